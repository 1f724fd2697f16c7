package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifiers_Absent(t *testing.T) {
	assert.Nil(t, CategoryIdentifier(&Category{Name: "X"}))
	assert.Nil(t, InstitutionIdentifier(&Institution{InstanceName: "X"}))
	assert.Nil(t, ReportIdentifier(&Report{Title: "X"}))

	assert.Nil(t, CategoryIdentifier(nil))
	assert.Nil(t, InstitutionIdentifier(nil))
	assert.Nil(t, ReportIdentifier(nil))
}

func TestIdentifiers_Present(t *testing.T) {
	id := int64(42)

	require.NotNil(t, CategoryIdentifier(&Category{ID: &id}))
	assert.Equal(t, int64(42), *CategoryIdentifier(&Category{ID: &id}))
	assert.Equal(t, int64(42), *InstitutionIdentifier(&Institution{ID: &id}))
	assert.Equal(t, int64(42), *ReportIdentifier(&Report{ID: &id}))
}

func TestReportType_UnmarshalJSON(t *testing.T) {
	var r Report
	require.NoError(t, json.Unmarshal([]byte(`{"type":"COMPLAINT"}`), &r))
	require.NotNil(t, r.Type)
	assert.Equal(t, ReportTypeComplaint, *r.Type)

	err := json.Unmarshal([]byte(`{"type":"UNKNOWN"}`), &r)
	assert.ErrorContains(t, err, "unknown report type")
}

func TestReport_MarshalOmitsAbsentFields(t *testing.T) {
	data, err := json.Marshal(Report{Title: "A", Images: []byte("hi")})
	require.NoError(t, err)

	assert.JSONEq(t, `{"title":"A","images":"aGk="}`, string(data))
}

func TestPageRequest_Normalize(t *testing.T) {
	p := PageRequest{Page: -1, Size: 0}.Normalize()
	assert.Equal(t, 0, p.Page)
	assert.Equal(t, DefaultPageSize, p.Size)

	p = PageRequest{Page: 2, Size: 500}.Normalize()
	assert.Equal(t, DefaultPageSize, p.Size)

	p = PageRequest{Page: 3, Size: 10}.Normalize()
	assert.Equal(t, 30, p.Offset())
}
