package uno

// Command represents a dispatch command supported by this module. The
// office identifies commands by ".uno:" URL; the mapping happens at
// the dispatch boundary so that everything above it works with the
// closed set of constants below.
type Command string

const (
	CommandGoToCell Command = "goToCell"
	CommandCopy     Command = "copy"
	CommandPaste    Command = "paste"
)

func (c Command) String() string {
	return string(c)
}

// URL returns the ".uno:" command URL the office expects, or the empty
// string for a command outside the supported set.
func (c Command) URL() string {
	switch c {
	case CommandGoToCell:
		return ".uno:GoToCell"
	case CommandCopy:
		return ".uno:Copy"
	case CommandPaste:
		return ".uno:Paste"
	}
	return ""
}

func (c Command) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func CommandValues() []Command {
	return []Command{
		CommandGoToCell,
		CommandCopy,
		CommandPaste,
	}
}

// DocumentKind identifies the application type of a new document.
type DocumentKind string

const (
	DocumentKindWriter DocumentKind = "Writer"
	DocumentKindCalc   DocumentKind = "Calc"
)

func (k DocumentKind) String() string {
	return string(k)
}

// FactoryURL returns the "private:factory/" URL used to create a blank
// document of this kind, or the empty string for an unknown kind.
func (k DocumentKind) FactoryURL() string {
	switch k {
	case DocumentKindWriter:
		return "private:factory/swriter"
	case DocumentKindCalc:
		return "private:factory/scalc"
	}
	return ""
}

func (k DocumentKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func DocumentKindValues() []DocumentKind {
	return []DocumentKind{
		DocumentKindWriter,
		DocumentKindCalc,
	}
}
