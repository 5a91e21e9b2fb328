package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

// Evidence upload MIME families accepted for nomination attachments.
// Office documents sniff as zip (docx, xlsx) or octet-stream (legacy
// doc, xls), so both generic types are on the list.
const (
	MimeImage       = "image/"
	MimePDF         = "application/pdf"
	MimeWord        = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeExcel       = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	MimeZip         = "application/zip"
	MimeOctetStream = "application/octet-stream"
)

var (
	AllowedEvidenceExtensions = []string{".pdf", ".doc", ".docx", ".xls", ".xlsx", ".png", ".jpg", ".jpeg"}

	AllowedEvidenceMimeTypes = []string{MimeImage, MimePDF, MimeWord, MimeExcel, MimeZip, MimeOctetStream}
)
