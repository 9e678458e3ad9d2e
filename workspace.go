package reticle

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Workspace layout names under the base directory.
const (
	CSVDirName        = "csv-library"
	OutputDirName     = "xhGenerated"
	ProfileDirName    = "profiles"
	DefaultCSVName    = "unique_crosshair_color_pairs.csv"
	DefaultPreviewSVG = "reticle-preview.svg"
	ProfileExt        = ".json"
)

// UserBaseSuffix is the base directory relative to a user's home.
var UserBaseSuffix = filepath.Join(".local", "lib", "xhGen")

// Workspace holds the directories collaborators read color pairs from and
// write artifacts and profiles to. It is passed explicitly; nothing in this
// module reads the process environment to find it.
type Workspace struct {
	Base       string
	CSVDir     string
	OutputDir  string
	ProfileDir string
}

// NewWorkspace lays out a workspace under base.
func NewWorkspace(base string) Workspace {
	return Workspace{
		Base:       base,
		CSVDir:     filepath.Join(base, CSVDirName),
		OutputDir:  filepath.Join(base, OutputDirName),
		ProfileDir: filepath.Join(base, ProfileDirName),
	}
}

// UserWorkspace lays out the per-user workspace under home.
func UserWorkspace(home string) Workspace {
	if home == "" {
		home = "."
	}
	return NewWorkspace(filepath.Join(home, UserBaseSuffix))
}

// DefaultCSVPath returns the stock color-pair list.
func (w Workspace) DefaultCSVPath() string {
	return filepath.Join(w.CSVDir, DefaultCSVName)
}

// PreviewPath returns the default single-render output file.
func (w Workspace) PreviewPath() string {
	return filepath.Join(w.OutputDir, DefaultPreviewSVG)
}

// SanitizeProfileName trims raw and replaces every character other than
// ASCII letters, digits, '-' and '_' with '_'. It returns "" for blank
// names.
func SanitizeProfileName(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	var sb strings.Builder
	for _, r := range trimmed {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			sb.WriteRune(r)
		default:
			sb.WriteByte('_')
		}
	}
	return sb.String()
}

// ProfilePath returns the file a named profile is stored in.
func (w Workspace) ProfilePath(name string) (string, error) {
	safe := SanitizeProfileName(name)
	if safe == "" {
		return "", ErrInvalidProfileName
	}
	return filepath.Join(w.ProfileDir, safe+ProfileExt), nil
}

// SaveProfile stores c under name and returns the file written.
func (w Workspace) SaveProfile(name string, c Config) (string, error) {
	path, err := w.ProfilePath(name)
	if err != nil {
		return "", err
	}
	if err := SaveConfig(path, c); err != nil {
		return "", err
	}
	return path, nil
}

// LoadProfile reads the profile stored under name.
func (w Workspace) LoadProfile(name string) (Config, error) {
	path, err := w.ProfilePath(name)
	if err != nil {
		return Config{}, err
	}
	return LoadConfig(path)
}

// DeleteProfile removes the profile stored under name and returns the file
// removed.
func (w Workspace) DeleteProfile(name string) (string, error) {
	path, err := w.ProfilePath(name)
	if err != nil {
		return "", err
	}
	if err := os.Remove(path); err != nil {
		return "", NewPathError("remove", path, err)
	}
	Logger().Debug("reticle: profile deleted", "path", path)
	return path, nil
}

// Profiles lists stored profile names in sorted order. A missing profile
// directory yields an empty list.
func (w Workspace) Profiles() ([]string, error) {
	entries, err := os.ReadDir(w.ProfileDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, NewPathError("readdir", w.ProfileDir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if filepath.Ext(e.Name()) != ProfileExt {
			Logger().Warn("reticle: skipping non-profile file", "dir", w.ProfileDir, "name", e.Name())
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ProfileExt))
	}
	sort.Strings(names)
	return names, nil
}
