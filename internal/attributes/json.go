package attributes

import "encoding/json"

// MarshalJSON encodes the set as an object with sorted keys.
func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Map())
}

// UnmarshalJSON decodes an object of strings.
func (s *Set) UnmarshalJSON(data []byte) error {
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*s = New(m)
	return nil
}
