package movies

import "fmt"

// Target selects the backend a save goes to.
type Target int

const (
	TargetRelational Target = iota
	TargetJSON
	TargetXML
)

func (t Target) String() string {
	switch t {
	case TargetRelational:
		return "db"
	case TargetJSON:
		return "json"
	case TargetXML:
		return "xml"
	}
	return fmt.Sprintf("Target(%d)", int(t))
}

// ParseTarget maps the save_to flag onto a Target. An empty flag means the
// relational store.
func ParseTarget(s string) (Target, error) {
	switch s {
	case "", "db":
		return TargetRelational, nil
	case "json":
		return TargetJSON, nil
	case "xml":
		return TargetXML, nil
	}
	return 0, &ValidationError{Fields: map[string]string{
		"save_to": fmt.Sprintf("unknown target %q (want db, json or xml)", s),
	}}
}

// Source selects the backend a listing or search reads from.
type Source int

const (
	SourceRelational Source = iota
	SourceFile
)

func (s Source) String() string {
	if s == SourceFile {
		return "file"
	}
	return "db"
}

// ParseSource treats anything other than "file" as the relational store.
func ParseSource(s string) Source {
	if s == "file" {
		return SourceFile
	}
	return SourceRelational
}
