package merger

// ClashEvent records one name-clash occurrence detected by Extend.
type ClashEvent struct {
	// Keys are the clashing merge keys, sorted
	Keys []string
	// SourcePath is the absolute path of the source nodes' parent container
	SourcePath string
	// DestPath is the absolute path of the destination container
	DestPath string
	// SourceFile identifies the source document
	SourceFile string
	// Mode is the merge mode the clash was handled under
	Mode Mode
}

// ClashSet accumulates the clash and missing-source state of one merge run.
// Strict-mode clashes decide whether the run must abort; graceful-mode
// clashes feed a warning summary only. The set is owned by the run: reset
// it at the start of each run, read it after the last merge.
//
// The zero value is ready to use.
type ClashSet struct {
	strict        []ClashEvent
	graceful      []ClashEvent
	missingSource []string
}

// Record files event on the strict or graceful side according to its Mode.
func (s *ClashSet) Record(event ClashEvent) {
	if event.Mode == ModeGraceful {
		s.graceful = append(s.graceful, event)
		return
	}
	s.strict = append(s.strict, event)
}

// RecordMissingSource files a required source package that was absent.
func (s *ClashSet) RecordMissingSource(name string) {
	s.missingSource = append(s.missingSource, name)
}

// AnyStrict reports whether any strict-mode clash was recorded. A true
// result is fatal for the whole run: orchestration must abort before the
// destination document is serialized.
func (s *ClashSet) AnyStrict() bool {
	return len(s.strict) > 0
}

// AnyGraceful reports whether any graceful-mode clash was recorded.
func (s *ClashSet) AnyGraceful() bool {
	return len(s.graceful) > 0
}

// AnyMissingSource reports whether any non-tolerated source package was
// missing. Like strict clashes, a true result is fatal for the run.
func (s *ClashSet) AnyMissingSource() bool {
	return len(s.missingSource) > 0
}

// Strict returns the recorded strict-mode clash events.
func (s *ClashSet) Strict() []ClashEvent {
	return s.strict
}

// Graceful returns the recorded graceful-mode clash events.
func (s *ClashSet) Graceful() []ClashEvent {
	return s.graceful
}

// MissingSource returns the names of missing source packages.
func (s *ClashSet) MissingSource() []string {
	return s.missingSource
}

// Reset clears all recorded state.
func (s *ClashSet) Reset() {
	s.strict = nil
	s.graceful = nil
	s.missingSource = nil
}
