package metadata

// Placeholders used when the manifest (or the git remote) has no value.
const (
	DefaultName         = "Unnamed Project"
	DefaultDescription  = "No description provided."
	DefaultVersion      = "1.0.0"
	DefaultLicense      = "No license specified"
	DefaultMainEntry    = "index.js"
	NoDependencies      = "No dependencies"
	RepositoryUnknown   = "Not specified"
	dependencySeparator = ", "
)

// Metadata is the fully resolved description of a project. Every field
// holds either a real value or one of the placeholders above.
type Metadata struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	Version       string `json:"version"`
	License       string `json:"license"`
	MainEntry     string `json:"main"`
	Dependencies  string `json:"dependencies"`
	RepositoryURL string `json:"repository"`
}

// HasRepository reports whether RepositoryURL is a real URL.
func (m Metadata) HasRepository() bool {
	return m.RepositoryURL != RepositoryUnknown && m.RepositoryURL != ""
}

// Fields returns label/value pairs in display order.
func (m Metadata) Fields() [][2]string {
	return [][2]string{
		{"Name", m.Name},
		{"Description", m.Description},
		{"Version", m.Version},
		{"License", m.License},
		{"Main", m.MainEntry},
		{"Dependencies", m.Dependencies},
		{"Repository", m.RepositoryURL},
	}
}
