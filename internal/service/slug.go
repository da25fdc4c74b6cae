package service

import "github.com/gosimple/slug"

// maxSlugLength matches the slug columns of services and statuses.
const maxSlugLength = 100

// makeSlug derives the identifier of name. Transliteration can make a slug
// much longer than its name, so the length is checked on the result.
func makeSlug(name string) (string, error) {
	s := slug.Make(name)
	if s == "" || len(s) > maxSlugLength {
		return "", ErrInvalidName
	}
	return s, nil
}
