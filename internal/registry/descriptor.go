package registry

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// VersionControlCategory marks descriptor metadata as a version control
// integration rather than a generic action plugin.
const VersionControlCategory = "version-control"

// PluginMeta is the YAML metadata describing a descriptor-based plugin.
type PluginMeta struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Icon     string `yaml:"icon"`
	Category string `yaml:"category"`
}

// DescriptorSource discovers descriptor-based plugins from YAML metadata
// files in a directory, filtered by category.
type DescriptorSource struct {
	Dir string
}

// NewDescriptorSource creates a source scanning dir for plugin metadata.
func NewDescriptorSource(dir string) *DescriptorSource {
	return &DescriptorSource{Dir: dir}
}

// Enumerate returns one Descriptor per generic (non version-control)
// metadata file with a usable id and name.
func (s *DescriptorSource) Enumerate() []Descriptor {
	var result []Descriptor
	for _, meta := range loadMetadata(s.Dir) {
		if meta.Category == VersionControlCategory {
			continue
		}
		result = append(result, Descriptor{
			Key:   meta.ID,
			Label: meta.Name,
			Icon:  meta.Icon,
			Path:  meta.path,
		})
	}
	return result
}

// VcsDescriptorSource discovers version control integrations declared as
// YAML metadata files.
type VcsDescriptorSource struct {
	Dir string
}

// NewVcsDescriptorSource creates a source scanning dir for VCS metadata.
func NewVcsDescriptorSource(dir string) *VcsDescriptorSource {
	return &VcsDescriptorSource{Dir: dir}
}

// Enumerate returns the declared plugin names.
func (s *VcsDescriptorSource) Enumerate() []string {
	var names []string
	for _, meta := range loadMetadata(s.Dir) {
		if meta.Category != VersionControlCategory {
			continue
		}
		names = append(names, meta.Name)
	}
	return names
}

type fileMeta struct {
	PluginMeta
	path string
}

func loadMetadata(dir string) []fileMeta {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var metas []fileMeta
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || (!strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml")) {
			continue
		}

		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		var meta PluginMeta
		if err := yaml.Unmarshal(data, &meta); err != nil {
			continue
		}
		if meta.Name == "" {
			continue
		}
		if meta.ID == "" {
			meta.ID = strings.TrimSuffix(strings.TrimSuffix(name, ".yaml"), ".yml")
		}
		metas = append(metas, fileMeta{PluginMeta: meta, path: path})
	}
	return metas
}
