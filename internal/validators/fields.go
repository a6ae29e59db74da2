package validators

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldUsername targets the login name of an account.
	FieldUsername = "username"

	// FieldEmail targets the contact address of an account.
	FieldEmail = "email"

	// FieldPassword targets the plaintext password of a registration.
	FieldPassword = "password"

	// FieldTitle targets the title of a discussion or post.
	FieldTitle = "title"

	// FieldAccountID targets the author reference of a post.
	FieldAccountID = "account_id"

	// FieldDiscussionID targets the owning discussion of a post.
	FieldDiscussionID = "discussion_id"

	// FieldPostID targets the identifier of an existing post.
	FieldPostID = "post_id"
)
