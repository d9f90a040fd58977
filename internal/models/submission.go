package models

// FeatureSlot is one of the three fixed feature-request sub-entries of a
// submission. Priority and Severity hold the mapped labels (or the raw code
// verbatim when no mapping exists); Attachment is the stored file name, ""
// when the slot had no upload.
type FeatureSlot struct {
	Priority    string `json:"priority"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
	Attachment  string `json:"attachment,omitempty"`
}

// SubmissionRecord is one accepted form submission. Records are appended to
// the workbook once and never mutated afterwards.
type SubmissionRecord struct {
	Timestamp     string         `json:"timestamp"`
	RequestorName string         `json:"requestorName"`
	DealerName    string         `json:"dealerName"`
	Email         string         `json:"email"`
	Phone         string         `json:"phone"`
	Slots         [3]FeatureSlot `json:"features"`
}

// Upload is one file received alongside a submission, already read off the wire.
type Upload struct {
	Filename string
	Data     []byte
}

// Ingress is the parsed form content handed over by the web layer: plain
// fields plus uploads keyed by form field name. Multipart decoding happens
// before this point.
type Ingress struct {
	Fields map[string]string
	Files  map[string]Upload
}

func (in *Ingress) Field(name string) string {
	if in.Fields == nil {
		return ""
	}
	return in.Fields[name]
}
