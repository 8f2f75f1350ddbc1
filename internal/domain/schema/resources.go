package schema

import "github.com/jsamuelsen11/taskplace-api/internal/domain"

// Display names used in validation messages.
const (
	ResourceUser  = "User"
	ResourceTask  = "Task"
	ResourcePlace = "Place"
)

// User fields. Access and password are server-assigned: access always starts
// as "user" and password is validated in plaintext before hashing.
func User() Schema {
	return New(ResourceUser,
		[]Field{
			{Name: domain.FieldEmail, Rules: []Rule{notNull, length(3, 254), containsAt}},
			Text("firstName", 1, 50),
			Text("lastName", 1, 50),
		},
		[]Field{
			Text(domain.FieldPassword, 8, 100),
			{Name: domain.FieldAccess, Rules: []Rule{notNull, oneOf(domain.AccessUser, domain.AccessAdmin)}},
		},
	)
}

// Task fields.
func Task() Schema {
	return New(ResourceTask,
		[]Field{
			Text("name", 1, 50),
			Text("description", 0, 1000),
			Timestamp("timeStart"),
			Timestamp("timeEnd"),
		},
		nil,
	)
}

// Place fields. taskId is settable on create only; the CRUD layer rejects it
// on update.
func Place() Schema {
	return New(ResourcePlace,
		[]Field{
			Text("addressLine1", 1, 75),
			Text("addressLine2", 0, 75),
			Text("city", 1, 50),
			Text("county", 1, 50),
			Text("postcode", 1, 15),
			Text("country", 2, 75),
			Reference(domain.FieldTaskID),
		},
		nil,
	)
}
