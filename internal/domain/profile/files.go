package profile

import (
	"path"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/hirecoder/backend/internal/domain/shared"
)

// FileKind names a file slot on a profile
type FileKind string

const (
	FileKindLogo           FileKind = "logo"
	FileKindProfilePicture FileKind = "profile_picture"
	FileKindResume         FileKind = "resume"
)

// IsValid reports whether k is a known file slot
func (k FileKind) IsValid() bool {
	return k == FileKindLogo || k == FileKindProfilePicture || k == FileKindResume
}

var allowedExtensions = map[FileKind][]string{
	FileKindLogo:           {"jpg", "jpeg", "png", "gif", "webp"},
	FileKindProfilePicture: {"jpg", "jpeg", "png", "gif", "webp"},
	FileKindResume:         {"pdf", "doc", "docx", "txt", "jpg", "jpeg", "png"},
}

// CheckUploadName rejects file names whose extension kind does not accept
func CheckUploadName(kind FileKind, fileName string) error {
	allowed, ok := allowedExtensions[kind]
	if !ok {
		return shared.NewValidationError("kind", "Kind must be logo, profile_picture or resume")
	}
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(strings.TrimSpace(fileName)), "."))
	if slices.Contains(allowed, ext) {
		return nil
	}
	return shared.NewValidationError("file_name",
		"Invalid file format. Allowed formats: "+strings.Join(allowed, ", "))
}

// FileKeyPrefix is the storage prefix under which userID uploads files of kind
func FileKeyPrefix(userID uuid.UUID, kind FileKind) string {
	return "profiles/" + userID.String() + "/" + string(kind) + "/"
}

// FileKey builds the storage key profiles/<user>/<kind>/<uuid>-<name>
func FileKey(userID uuid.UUID, kind FileKind, fileName string) string {
	name := path.Base(strings.ReplaceAll(strings.TrimSpace(fileName), "\\", "/"))
	if name == "." || name == "/" || name == "" {
		name = "file"
	}
	return FileKeyPrefix(userID, kind) + uuid.NewString() + "-" + name
}

// checkFileKey rejects keys outside the user's slot for kind
func checkFileKey(verrs *shared.ValidationErrors, field, key string, userID uuid.UUID, kind FileKind) string {
	key = strings.TrimSpace(key)
	if key != "" && (!strings.HasPrefix(key, FileKeyPrefix(userID, kind)) || strings.Contains(key, "..")) {
		verrs.Add(field, "File key does not belong to this profile")
	}
	return key
}
