package constvars

// CustomValidationErrorMessages maps validator tags to client wording.
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email address",
	"min":      "must be at least %s characters",
	"max":      "must be at most %s characters",
	"gte":      "must be greater than or equal to %s",
	"lte":      "must be less than or equal to %s",
	"gt":       "must be greater than %s",
	"oneof":    "must be one of: %s",
	"datetime": "must match the expected date format",
	"len":      "must be exactly %s characters",
}

// TagsWithParams marks tags whose message carries the tag parameter.
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"gte":      true,
	"lte":      true,
	"gt":       true,
	"oneof":    true,
	"datetime": true,
	"len":      true,
}
