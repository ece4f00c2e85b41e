package widgets

import "fmt"

// Upload progress model: files upload one at a time, never in parallel, and
// each carries its own status label.

type UploadStatus string

const (
	UploadQueued    UploadStatus = "Queued"
	UploadUploading UploadStatus = "Uploading"
	UploadComplete  UploadStatus = "Complete"
	UploadError     UploadStatus = "Error"
)

type UploadItem struct {
	Name   string
	Status UploadStatus
}

type UploadProgress struct {
	items []UploadItem
}

func NewUploadProgress(filenames []string) *UploadProgress {
	items := make([]UploadItem, len(filenames))
	for i, name := range filenames {
		items[i] = UploadItem{Name: name, Status: UploadQueued}
	}
	return &UploadProgress{items: items}
}

func (p *UploadProgress) Items() []UploadItem {
	return append([]UploadItem(nil), p.items...)
}

// Next returns the index of the next queued file, enforcing the sequential
// order: it refuses to start a file while another is still uploading.
func (p *UploadProgress) Next() (int, bool) {
	for _, item := range p.items {
		if item.Status == UploadUploading {
			return -1, false
		}
	}
	for i, item := range p.items {
		if item.Status == UploadQueued {
			return i, true
		}
	}
	return -1, false
}

func (p *UploadProgress) Start(i int) {
	p.set(i, UploadUploading)
}

func (p *UploadProgress) Complete(i int) {
	p.set(i, UploadComplete)
}

func (p *UploadProgress) Fail(i int) {
	p.set(i, UploadError)
}

func (p *UploadProgress) set(i int, status UploadStatus) {
	if i >= 0 && i < len(p.items) {
		p.items[i].Status = status
	}
}

// Done reports whether every file has finished, successfully or not.
func (p *UploadProgress) Done() bool {
	for _, item := range p.items {
		if item.Status == UploadQueued || item.Status == UploadUploading {
			return false
		}
	}
	return true
}

func (p *UploadProgress) String() string {
	done := 0
	for _, item := range p.items {
		if item.Status == UploadComplete || item.Status == UploadError {
			done++
		}
	}
	return fmt.Sprintf("%d/%d files processed", done, len(p.items))
}
