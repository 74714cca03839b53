package domain

import "go.trai.ch/zerr"

// PropertyKind distinguishes output and input properties on the wire.
type PropertyKind uint8

const (
	// KindOutput marks a declared task output.
	KindOutput PropertyKind = iota + 1
	// KindInput marks a declared task input.
	KindInput
)

// OutputFileType describes the shape of a file-valued output.
type OutputFileType uint8

// Output file types.
const (
	OutputFile OutputFileType = iota
	OutputFiles
	OutputDirectory
	OutputDirectories
)

var outputFileTypeNames = [...]string{"file", "files", "directory", "directories"}

func (t OutputFileType) String() string {
	if int(t) < len(outputFileTypeNames) {
		return outputFileTypeNames[t]
	}
	return "unknown"
}

// Valid reports whether t is a known output file type.
func (t OutputFileType) Valid() bool {
	return int(t) < len(outputFileTypeNames)
}

// ParseOutputFileType parses the name of an output file type.
func ParseOutputFileType(s string) (OutputFileType, error) {
	for i, name := range outputFileTypeNames {
		if name == s {
			return OutputFileType(i), nil
		}
	}
	return 0, zerr.With(zerr.New("unknown output file type"), "type", s)
}

// InputFileType describes the shape of a file-valued input.
type InputFileType uint8

// Input file types.
const (
	InputFile InputFileType = iota
	InputFiles
	InputDirectory
)

var inputFileTypeNames = [...]string{"file", "files", "directory"}

func (t InputFileType) String() string {
	if int(t) < len(inputFileTypeNames) {
		return inputFileTypeNames[t]
	}
	return "unknown"
}

// Valid reports whether t is a known input file type.
func (t InputFileType) Valid() bool {
	return int(t) < len(inputFileTypeNames)
}

// ParseInputFileType parses the name of an input file type.
func ParseInputFileType(s string) (InputFileType, error) {
	for i, name := range inputFileTypeNames {
		if name == s {
			return InputFileType(i), nil
		}
	}
	return 0, zerr.With(zerr.New("unknown input file type"), "type", s)
}

// Normalizer identifies how a file input is fingerprinted.
type Normalizer string

// Well-known normalizers.
const (
	AbsolutePathNormalizer     Normalizer = "absolute-path"
	RelativePathNormalizer     Normalizer = "relative-path"
	NameOnlyNormalizer         Normalizer = "name-only"
	IgnoredPathNormalizer      Normalizer = "ignored-path"
	ClasspathNormalizer        Normalizer = "classpath"
	CompileClasspathNormalizer Normalizer = "compile-classpath"
)

// OutputProperty is a declared output of a task.
type OutputProperty struct {
	Name     string
	Type     OutputFileType
	Optional bool
	Value    ValueSource
}

// FileInput holds the metadata of a file-valued input.
type FileInput struct {
	Type          InputFileType
	SkipWhenEmpty bool
	Normalizer    Normalizer
}

// InputProperty is a declared input of a task. File is nil for plain value inputs.
type InputProperty struct {
	Name     string
	Optional bool
	File     *FileInput
	Value    ValueSource
}

// IsFile reports whether the input is file-valued.
func (p InputProperty) IsFile() bool {
	return p.File != nil
}
