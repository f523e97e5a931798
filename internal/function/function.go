package function

// Function is a named, ordered list of magick command strings. Commands may
// be empty; executing an empty function yields zero outputs.
type Function struct {
	Name     string   `json:"name"`
	Commands []string `json:"commands"`
}
