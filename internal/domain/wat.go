package domain

// Wat is a named image set retrievable by expression matching
type Wat struct {
	ID          int64
	Name        string
	FileIDs     []string
	Expressions []string
}

// LargestFileID returns the file ID of the biggest image variant.
// FileIDs are ordered ascending by size, so this is the last element.
func (w *Wat) LargestFileID() string {
	if len(w.FileIDs) == 0 {
		return ""
	}
	return w.FileIDs[len(w.FileIDs)-1]
}

// SmallestFileID returns the file ID of the smallest image variant
func (w *Wat) SmallestFileID() string {
	if len(w.FileIDs) == 0 {
		return ""
	}
	return w.FileIDs[0]
}
