package vo

type FileUploadStatus string

const (
	FileUploadStatusPending  FileUploadStatus = "pending"
	FileUploadStatusUploaded FileUploadStatus = "uploaded"
	FileUploadStatusExpired  FileUploadStatus = "expired"
	FileUploadStatusFailed   FileUploadStatus = "failed"
)

var fileUploadStatuses = newEnumSet(FileUploadStatusPending, FileUploadStatusUploaded, FileUploadStatusExpired, FileUploadStatusFailed)

func (s *FileUploadStatus) UnmarshalJSON(data []byte) (err error) {
	*s, err = decodeEnum(data, fileUploadStatuses, "file upload status")
	return err
}

type FileUploadMode string

const (
	FileUploadModeSinglePart  FileUploadMode = "single_part"
	FileUploadModeMultiPart   FileUploadMode = "multi_part"
	FileUploadModeExternalURL FileUploadMode = "external_url"
)

var fileUploadModes = newEnumSet(FileUploadModeSinglePart, FileUploadModeMultiPart, FileUploadModeExternalURL)

func (m *FileUploadMode) UnmarshalJSON(data []byte) (err error) {
	*m, err = decodeEnum(data, fileUploadModes, "file upload mode")
	return err
}

type FileUpload struct {
	Object           string            `json:"object"`
	ID               string            `json:"id"`
	CreatedTime      string            `json:"created_time,omitempty"`
	LastEditedTime   string            `json:"last_edited_time,omitempty"`
	CreatedBy        *User             `json:"created_by,omitempty"`
	ExpiryTime       string            `json:"expiry_time,omitempty"`
	UploadURL        string            `json:"upload_url,omitempty"`
	CompleteURL      string            `json:"complete_url,omitempty"`
	Archived         bool              `json:"archived"`
	InTrash          bool              `json:"in_trash,omitempty"`
	Status           FileUploadStatus  `json:"status"`
	Filename         string            `json:"filename,omitempty"`
	ContentType      string            `json:"content_type,omitempty"`
	ContentLength    int64             `json:"content_length,omitempty"`
	NumberOfParts    *NumberOfParts    `json:"number_of_parts,omitempty"`
	FileImportResult *FileImportResult `json:"file_import_result,omitempty"`
}

type NumberOfParts struct {
	Total int `json:"total"`
	Sent  int `json:"sent"`
}

type FileImportResult struct {
	ImportedTime string           `json:"imported_time,omitempty"`
	Type         string           `json:"type"`
	Error        *FileImportError `json:"error,omitempty"`
}

type FileImportError struct {
	Type       string `json:"type"`
	Code       string `json:"code"`
	Message    string `json:"message"`
	Parameter  string `json:"parameter,omitempty"`
	StatusCode int    `json:"status_code,omitempty"`
}

// Ref returns the file reference to attach this upload to a block or property.
func (u FileUpload) Ref() File {
	f := UploadedFileID(u.ID)
	f.Name = u.Filename
	return f
}
