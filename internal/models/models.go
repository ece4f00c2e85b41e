package models

// The backend owns every entity below; these are request-scoped
// representations of its response shapes, never persisted locally.

type CollectionPermission string

const (
	CollectionPermissionView            CollectionPermission = "VIEW"
	CollectionPermissionEdit            CollectionPermission = "EDIT"
	CollectionPermissionDelete          CollectionPermission = "DELETE"
	CollectionPermissionManageUsers     CollectionPermission = "MANAGE_USERS"
	CollectionPermissionManageResources CollectionPermission = "MANAGE_RESOURCES"
)

type Collection struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Prompt      string                 `json:"prompt,omitempty"`
	CreatedAt   string                 `json:"created_at"`
	Permissions []CollectionPermission `json:"permissions"`
}

type CollectionList struct {
	Collections []Collection `json:"collections"`
	IsAdmin     bool         `json:"is_admin"`
}

type ResourcePermission string

const (
	ResourcePermissionView         ResourcePermission = "VIEW"
	ResourcePermissionReadContents ResourcePermission = "READ_CONTENTS"
	ResourcePermissionDelete       ResourcePermission = "DELETE"
)

type Resource struct {
	ID           string               `json:"id"`
	URL          string               `json:"url,omitempty"`
	Filename     string               `json:"filename,omitempty"`
	ContentType  string               `json:"content_type"`
	CreatedAt    string               `json:"created_at,omitempty"`
	ProcessError string               `json:"process_error,omitempty"`
	Permissions  []ResourcePermission `json:"permissions"`
}

// DisplayName is what tables and notifications show for a resource: the
// filename for uploaded files, otherwise the source URL.
func (r Resource) DisplayName() string {
	if r.Filename != "" {
		return r.Filename
	}
	return r.URL
}

type ResourceList struct {
	Total     int        `json:"total"`
	PageSize  int        `json:"page_size"`
	Page      int        `json:"page"`
	Resources []Resource `json:"resources"`
}

type Document struct {
	PageContent string `json:"page_content"`
}

type DocumentList struct {
	Documents []Document `json:"documents"`
}

type UserRole struct {
	CreatedAt    string `json:"created_at"`
	UserID       string `json:"user_id"`
	CollectionID string `json:"collection_id"`
	UserEmail    string `json:"user_email"`
	Role         string `json:"role"`
}

type UserRoleList struct {
	UserRoles []UserRole `json:"user_roles"`
}
