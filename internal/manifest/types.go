package manifest

// Implementation names one platform integration file declared by a manifest.
type Implementation struct {
	// Platform is the target platform or language for this entry (optional).
	Platform string `json:"platform,omitempty" yaml:"platform,omitempty"`

	// File is the implementation file path relative to the manifest's directory.
	File string `json:"file" yaml:"file"`
}

// Manifest describes an addon's identity, version, and implementation files.
type Manifest struct {
	// Domain is the unique identifier for the addon.
	Domain string `json:"domain" yaml:"domain"`

	// Name is the human-readable addon name.
	Name string `json:"name" yaml:"name"`

	// Version is the addon's own semantic version.
	Version string `json:"version" yaml:"version"`

	// Implementations lists the declared integration files, in declaration order.
	Implementations []Implementation `json:"implementations" yaml:"implementations"`

	// MinCoreVersion is the lowest core version the addon declares itself
	// compatible with. Optional; absence means compatibility is unknown.
	MinCoreVersion string `json:"min_core_version,omitempty" yaml:"min_core_version,omitempty"`
}

// File is one discovered manifest file, parsed once at discovery time.
type File struct {
	// Path is the location of the manifest file.
	Path string

	// Dir is the directory containing the manifest. Implementation file
	// paths are resolved relative to it.
	Dir string

	// Raw is the file content as read from disk.
	Raw []byte

	// Doc is the generically decoded document, used for schema validation.
	// Nil only when the document could not be parsed at all.
	Doc any

	// Manifest is the best-effort typed decode of the document. Fields whose
	// values have the wrong type are left at their zero value; the schema
	// check against Doc reports them. Nil only when parsing failed.
	Manifest *Manifest

	// ParseErr records a syntax failure: the document could not be decoded
	// as structured data. When set, Doc and Manifest are nil and structural
	// checks for this file are skipped.
	ParseErr error
}

// Index is the addons.json repository index.
type Index struct {
	Addons []IndexEntry `json:"addons"`
}

// IndexEntry is one addon registration in the index.
type IndexEntry struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// Problem is a discovery-level defect (index or layout) that is reported as
// a validation error rather than aborting the run.
type Problem struct {
	Path    string
	Message string
}

// Set is the result of discovering manifests under a target directory.
type Set struct {
	Files    []File
	Problems []Problem
}
