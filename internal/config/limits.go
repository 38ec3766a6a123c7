package config

const (
	// MaxFolderNameLength is the maximum length for folder names, counted in characters.
	// Limited to 255 to fit in a VARCHAR(255) column.
	MaxFolderNameLength = 255

	// MaxSearchResults caps the number of folders returned by a name search.
	MaxSearchResults = 100
)
