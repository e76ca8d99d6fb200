package catalog

import "encoding/json"

// UnmarshalJSON decodes the embedded course (which re-hydrates its own dates)
// and then the catalog-only fields, which the promoted course decoder would
// otherwise drop.
func (it *Item) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &it.Course); err != nil {
		return err
	}
	var extra struct {
		WhatYouLearn []string `json:"whatYouLearn"`
		Requirements []string `json:"requirements"`
	}
	if err := json.Unmarshal(data, &extra); err != nil {
		return err
	}
	it.WhatYouLearn = extra.WhatYouLearn
	it.Requirements = extra.Requirements
	return nil
}
