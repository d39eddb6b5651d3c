package domain

// ApexClass is a class row from the Tooling API. Body is only filled when a
// single class is fetched.
type ApexClass struct {
	ID                    string  `json:"id"`
	Name                  string  `json:"name"`
	APIVersion            float64 `json:"apiVersion"`
	Status                string  `json:"status"`
	Body                  string  `json:"body,omitempty"`
	NamespacePrefix       *string `json:"namespacePrefix"`
	LengthWithoutComments int     `json:"lengthWithoutComments"`
	BodyCrc               float64 `json:"bodyCrc"`
	IsValid               bool    `json:"isValid"`
	CreatedDate           string  `json:"createdDate"`
	LastModifiedDate      string  `json:"lastModifiedDate"`
}

// User is an active user of the org.
type User struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Username          string `json:"username"`
	Email             string `json:"email"`
	Alias             string `json:"alias"`
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	Title             string `json:"title"`
	Department        string `json:"department"`
	ProfileName       string `json:"profileName"`
	RoleName          string `json:"roleName"`
	ManagerID         string `json:"managerId"`
	ManagerName       string `json:"managerName"`
	CreatedDate       string `json:"createdDate"`
	LastLoginDate     string `json:"lastLoginDate"`
	IsActive          bool   `json:"isActive"`
	TimeZoneSidKey    string `json:"timeZoneSidKey"`
	LocaleSidKey      string `json:"localeSidKey"`
	EmailEncodingKey  string `json:"emailEncodingKey"`
	LanguageLocaleKey string `json:"languageLocaleKey"`
	UserType          string `json:"userType"`
	UserRoleID        string `json:"userRoleId"`
}

// LoginHistory is one login attempt.
type LoginHistory struct {
	ID        string `json:"Id"`
	UserID    string `json:"UserId"`
	LoginTime string `json:"LoginTime"`
	SourceIP  string `json:"SourceIp"`
	LoginType string `json:"LoginType"`
	Status    string `json:"Status"`
	Browser   string `json:"Browser"`
	LoginURL  string `json:"LoginUrl"`
}

// FeedItem is a Chatter post. Records are passed through with Salesforce field names.
type FeedItem struct {
	ID            string          `json:"Id"`
	Body          string          `json:"Body"`
	CreatedBy     *NamedReference `json:"CreatedBy"`
	CreatedDate   string          `json:"CreatedDate"`
	BestCommentID *string         `json:"BestCommentId"`
	CommentCount  int             `json:"CommentCount"`
	Title         *string         `json:"Title"`
	Type          string          `json:"Type"`
	Status        string          `json:"Status"`
	LinkURL       *string         `json:"LinkUrl"`
	LikeCount     int             `json:"LikeCount"`
}

// NamedReference is a relationship field that only carries Name.
type NamedReference struct {
	Name string `json:"Name"`
}

// ChatterPost is the input for creating a feed item.
type ChatterPost struct {
	Text      string
	SubjectID string
}

// EmailTemplate is a template from a named folder.
type EmailTemplate struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Subject     string `json:"subject"`
	HTMLContent string `json:"htmlContent"`
	FolderID    string `json:"folderId"`
}
