package drive

import "strconv"

// FileList is one page of the Drive files API response.
type FileList struct {
	NextPageToken string `json:"nextPageToken"`
	Files         []File `json:"files"`
}

// File is one Drive file entry. Size arrives as a decimal string.
type File struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Size           string `json:"size"`
	MimeType       string `json:"mimeType"`
	ThumbnailLink  string `json:"thumbnailLink"`
	WebContentLink string `json:"webContentLink"`
}

// SizeBytes parses the size field; malformed or missing sizes count as 0.
func (f File) SizeBytes() int64 {
	n, err := strconv.ParseInt(f.Size, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
