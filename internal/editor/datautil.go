package editor

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
)

// MaxFileSize - максимальный размер вложения
const MaxFileSize = 10 << 20

// FileLoadError - ошибка загрузки файла в форму
type FileLoadError struct {
	Message string
	Key     string
	Params  map[string]string
}

func (e *FileLoadError) Error() string {
	return e.Message
}

// DataUtils - работа с бинарными вложениями формы
type DataUtils struct{}

// ByteSize возвращает размер данных, закодированных в base64, в виде "1 234 bytes"
func (DataUtils) ByteSize(base64String string) string {
	return formatAsBytes(base64Size(base64String))
}

// LoadFileToForm читает вложение и записывает его вместе с типом содержимого в поле Images формы.
// Если isImage, файлы с типом не image/* отклоняются.
func (DataUtils) LoadFileToForm(form *ReportForm, r io.Reader, isImage bool) error {
	data, err := io.ReadAll(io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		return &FileLoadError{Message: fmt.Sprintf("Could not read file: %v", err), Key: "not.read"}
	}
	if len(data) == 0 {
		return &FileLoadError{Message: "Could not extract file", Key: "not.extract"}
	}
	if len(data) > MaxFileSize {
		return &FileLoadError{
			Message: fmt.Sprintf("File is larger than %s", humanize.IBytes(MaxFileSize)),
			Key:     "too.large",
		}
	}

	contentType := mimetype.Detect(data).String()
	if isImage && !strings.HasPrefix(contentType, "image/") {
		return &FileLoadError{
			Message: fmt.Sprintf("File was expected to be an image but was found to be '%s'", contentType),
			Key:     "not.image",
			Params:  map[string]string{"fileType": contentType},
		}
	}

	form.Images = data
	form.ImagesContentType = contentType
	return nil
}

// LoadFileFromPath - LoadFileToForm для файла на диске
func (d DataUtils) LoadFileFromPath(form *ReportForm, path string, isImage bool) error {
	f, err := os.Open(path)
	if err != nil {
		return &FileLoadError{Message: fmt.Sprintf("Could not open file: %v", err), Key: "not.read"}
	}
	defer f.Close()
	return d.LoadFileToForm(form, f, isImage)
}

func base64Size(value string) int64 {
	if value == "" {
		return 0
	}
	padding := 0
	if strings.HasSuffix(value, "==") {
		padding = 2
	} else if strings.HasSuffix(value, "=") {
		padding = 1
	}
	return int64(len(value)/4*3 - padding)
}

func formatAsBytes(size int64) string {
	return strings.ReplaceAll(humanize.Comma(size), ",", " ") + " bytes"
}
