package mealdb

import (
	"encoding/json"
)

// Text is a JSON string field that tolerates null and non-string values,
// both of which decode to "".
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*t = ""
		return nil
	}
	*t = Text(s)
	return nil
}

func (t Text) String() string {
	return string(t)
}

// Meal is one record of the search response. Only the fields the cards use
// are decoded.
type Meal struct {
	ID        Text `json:"idMeal"`
	Name      Text `json:"strMeal"`
	Category  Text `json:"strCategory"`
	Area      Text `json:"strArea"`
	Thumbnail Text `json:"strMealThumb"`
	Source    Text `json:"strSource"`
	Youtube   Text `json:"strYoutube"`
}

// UnmarshalJSON decodes a record leniently: anything that is not an object
// yields the zero Meal instead of failing the surrounding array.
func (m *Meal) UnmarshalJSON(data []byte) error {
	type plain Meal
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		*m = Meal{}
		return nil
	}
	*m = Meal(p)
	return nil
}

// SearchResponse is the body of search.php. Meals is nil when the API
// reports no matches.
type SearchResponse struct {
	Meals []Meal `json:"meals"`
}
