package domain

// Vars is a key/value store used for templating content strings.
type Vars map[string]string

// Merge merges base and override vars (override wins) and returns a new map.
func Merge(base Vars, override Vars) Vars {
	out := Vars{}
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}
