package vo

import (
	"errors"

	json "github.com/goccy/go-json"
)

type FileType string

const (
	FileTypeExternal   FileType = "external"
	FileTypeFile       FileType = "file"
	FileTypeFileUpload FileType = "file_upload"
)

type ExternalFile struct {
	URL string `json:"url"`
}

// HostedFile is a file stored by Notion behind a signed, expiring url.
type HostedFile struct {
	URL        string `json:"url"`
	ExpiryTime string `json:"expiry_time,omitempty"`
}

// UploadedFile references a file sent through the file upload api.
type UploadedFile struct {
	ID string `json:"id"`
}

// File is untagged on the wire: the variant follows from which of the keys
// external, file or file_upload is present, checked in that order.
type File struct {
	Type       FileType      `json:"-"`
	External   *ExternalFile `json:"-"`
	File       *HostedFile   `json:"-"`
	FileUpload *UploadedFile `json:"-"`
	Name       string        `json:"-"`
	Caption    []RichText    `json:"-"`
}

var ErrUnknownFile = errors.New("file has none of external, file or file_upload")

func ExternalFileURL(url string) File {
	return File{Type: FileTypeExternal, External: &ExternalFile{URL: url}}
}

func HostedFileURL(url, expiry string) File {
	return File{Type: FileTypeFile, File: &HostedFile{URL: url, ExpiryTime: expiry}}
}

func UploadedFileID(id string) File {
	return File{Type: FileTypeFileUpload, FileUpload: &UploadedFile{ID: id}}
}

// URL returns the download url, empty for api uploads.
func (f File) URL() string {
	switch {
	case f.External != nil:
		return f.External.URL
	case f.File != nil:
		return f.File.URL
	}
	return ""
}

type fileWire struct {
	Type       FileType      `json:"type,omitempty"`
	Name       string        `json:"name,omitempty"`
	Caption    []RichText    `json:"caption,omitempty"`
	External   *ExternalFile `json:"external,omitempty"`
	File       *HostedFile   `json:"file,omitempty"`
	FileUpload *UploadedFile `json:"file_upload,omitempty"`
}

func (f File) MarshalJSON() ([]byte, error) {
	w := fileWire{Name: f.Name, Caption: f.Caption}
	switch {
	case f.External != nil:
		w.Type, w.External = FileTypeExternal, f.External
	case f.File != nil:
		w.Type, w.File = FileTypeFile, f.File
	case f.FileUpload != nil:
		w.Type, w.FileUpload = FileTypeFileUpload, f.FileUpload
	default:
		return nil, ErrUnknownFile
	}
	return json.Marshal(w)
}

func (f *File) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var w struct {
		Name    string     `json:"name"`
		Caption []RichText `json:"caption"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	out := File{Name: w.Name, Caption: w.Caption}
	if v, ok := raw["external"]; ok && !isNull(v) {
		out.Type, out.External = FileTypeExternal, &ExternalFile{}
		if err := json.Unmarshal(v, out.External); err != nil {
			return err
		}
	} else if v, ok := raw["file"]; ok && !isNull(v) {
		out.Type, out.File = FileTypeFile, &HostedFile{}
		if err := json.Unmarshal(v, out.File); err != nil {
			return err
		}
	} else if v, ok := raw["file_upload"]; ok && !isNull(v) {
		out.Type, out.FileUpload = FileTypeFileUpload, &UploadedFile{}
		if err := json.Unmarshal(v, out.FileUpload); err != nil {
			return err
		}
	} else {
		return ErrUnknownFile
	}
	*f = out
	return nil
}
