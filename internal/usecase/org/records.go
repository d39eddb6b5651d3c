package org

import "github.com/bnema/forcedeck/internal/domain"

// Wire shapes of the SOQL rows. Salesforce uses PascalCase field names and
// nests relationship fields.

type apexClassRecord struct {
	ID                    string  `json:"Id"`
	Name                  string  `json:"Name"`
	APIVersion            float64 `json:"ApiVersion"`
	Status                string  `json:"Status"`
	Body                  string  `json:"Body"`
	NamespacePrefix       *string `json:"NamespacePrefix"`
	LengthWithoutComments int     `json:"LengthWithoutComments"`
	BodyCrc               float64 `json:"BodyCrc"`
	IsValid               bool    `json:"IsValid"`
	CreatedDate           string  `json:"CreatedDate"`
	LastModifiedDate      string  `json:"LastModifiedDate"`
}

func (r apexClassRecord) toDomain(withBody bool) domain.ApexClass {
	class := domain.ApexClass{
		ID:                    r.ID,
		Name:                  r.Name,
		APIVersion:            r.APIVersion,
		Status:                r.Status,
		NamespacePrefix:       r.NamespacePrefix,
		LengthWithoutComments: r.LengthWithoutComments,
		BodyCrc:               r.BodyCrc,
		IsValid:               r.IsValid,
		CreatedDate:           r.CreatedDate,
		LastModifiedDate:      r.LastModifiedDate,
	}
	if withBody {
		class.Body = r.Body
	}
	return class
}

type userRecord struct {
	ID                string                 `json:"Id"`
	Name              string                 `json:"Name"`
	Username          string                 `json:"Username"`
	Email             string                 `json:"Email"`
	Alias             string                 `json:"Alias"`
	FirstName         string                 `json:"FirstName"`
	LastName          string                 `json:"LastName"`
	Title             string                 `json:"Title"`
	Department        string                 `json:"Department"`
	Profile           *domain.NamedReference `json:"Profile"`
	UserRole          *domain.NamedReference `json:"UserRole"`
	ManagerID         string                 `json:"ManagerId"`
	Manager           *domain.NamedReference `json:"Manager"`
	CreatedDate       string                 `json:"CreatedDate"`
	LastLoginDate     string                 `json:"LastLoginDate"`
	IsActive          bool                   `json:"IsActive"`
	TimeZoneSidKey    string                 `json:"TimeZoneSidKey"`
	LocaleSidKey      string                 `json:"LocaleSidKey"`
	EmailEncodingKey  string                 `json:"EmailEncodingKey"`
	LanguageLocaleKey string                 `json:"LanguageLocaleKey"`
	UserType          string                 `json:"UserType"`
	UserRoleID        string                 `json:"UserRoleId"`
}

func (r userRecord) toDomain() domain.User {
	return domain.User{
		ID:                r.ID,
		Name:              r.Name,
		Username:          r.Username,
		Email:             r.Email,
		Alias:             r.Alias,
		FirstName:         r.FirstName,
		LastName:          r.LastName,
		Title:             r.Title,
		Department:        r.Department,
		ProfileName:       refName(r.Profile),
		RoleName:          refName(r.UserRole),
		ManagerID:         r.ManagerID,
		ManagerName:       refName(r.Manager),
		CreatedDate:       r.CreatedDate,
		LastLoginDate:     r.LastLoginDate,
		IsActive:          r.IsActive,
		TimeZoneSidKey:    r.TimeZoneSidKey,
		LocaleSidKey:      r.LocaleSidKey,
		EmailEncodingKey:  r.EmailEncodingKey,
		LanguageLocaleKey: r.LanguageLocaleKey,
		UserType:          r.UserType,
		UserRoleID:        r.UserRoleID,
	}
}

type emailTemplateRecord struct {
	ID        string `json:"Id"`
	Name      string `json:"Name"`
	Subject   string `json:"Subject"`
	HTMLValue string `json:"HtmlValue"`
	FolderID  string `json:"FolderId"`
}

func refName(ref *domain.NamedReference) string {
	if ref == nil {
		return ""
	}
	return ref.Name
}
