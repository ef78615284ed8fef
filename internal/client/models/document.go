package models

import (
	"time"

	"github.com/mygaadi/mygaadi/internal/common"
)

// DocumentType is a closed enumeration.
type DocumentType string

const (
	DocRegistration DocumentType = "Registration"
	DocInsurance    DocumentType = "Insurance"
	DocService      DocumentType = "Service"
	DocOther        DocumentType = "Other"
)

// ParseDocumentType validates a raw document type string.
func ParseDocumentType(s string) (DocumentType, error) {
	switch DocumentType(s) {
	case DocRegistration, DocInsurance, DocService, DocOther:
		return DocumentType(s), nil
	default:
		return "", common.ErrUnknownDocType
	}
}

// Document references an uploaded file. FileURL is an opaque handle; the
// client never reads the bytes back.
type Document struct {
	ID          string       `json:"id"`
	UserID      string       `json:"userId"`
	VehicleID   string       `json:"vehicleId"`
	VehicleName string       `json:"vehicleName"`
	Type        DocumentType `json:"documentType"`
	FileName    string       `json:"fileName"`
	UploadDate  time.Time    `json:"uploadDate"`
	FileURL     string       `json:"fileUrl"`
}
