package entity

// TokenKind discriminates access tokens from refresh tokens.
type TokenKind string

const (
	// TokenKindAccess authorizes API requests.
	TokenKindAccess TokenKind = "access"
	// TokenKindRefresh only authorizes minting new tokens.
	TokenKindRefresh TokenKind = "refresh"
)

// TokenSubject is the identity carried inside a token.
type TokenSubject struct {
	UserID int64
	Email  string
	Role   Role
}

// SubjectOf builds the token subject for a user.
func SubjectOf(u *User) TokenSubject {
	return TokenSubject{
		UserID: u.ID,
		Email:  u.Email,
		Role:   u.Role,
	}
}
