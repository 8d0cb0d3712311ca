package progress

// Update represents raw transfer progress data, emitted after each chunk is
// written to the destination file.
type Update struct {
	TransferredBytes uint64
	TotalBytes       int64 // -1 when the server did not advertise a Content-Length
}

// Func is the observer the fetcher invokes with every update. Implementations
// decide how (or whether) progress is rendered.
type Func func(Update)

// SizeKnown reports whether the server advertised a total size.
func (u Update) SizeKnown() bool {
	return u.TotalBytes >= 0
}

// Percentage returns completion as 0-100, or 0 when the total is unknown.
func (u Update) Percentage() float64 {
	if u.TotalBytes <= 0 {
		return 0
	}
	return float64(u.TransferredBytes) / float64(u.TotalBytes) * 100.0
}
