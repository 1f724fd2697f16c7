package models

// Institution - учреждение, которому адресовано обращение
type Institution struct {
	ID            *int64 `json:"id,omitempty"`
	InstanceName  string `json:"instanceName,omitempty"`
	Address       string `json:"address,omitempty"`
	ContactNumber string `json:"contactNumber,omitempty"`
}

// InstitutionIdentifier возвращает идентификатор учреждения или nil
func InstitutionIdentifier(institution *Institution) *int64 {
	if institution == nil {
		return nil
	}
	return institution.ID
}
