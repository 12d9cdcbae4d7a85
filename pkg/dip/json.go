package dip

import "encoding/json"

// chipJSON is the serialized form of a Chip.
type chipJSON struct {
	Name  string    `json:"name"`
	Title string    `json:"title"`
	Dip   int       `json:"dip"`
	Width int       `json:"width"`
	Pins  []pinJSON `json:"pins"`
}

type pinJSON struct {
	Number int      `json:"number"`
	Names  []string `json:"names"`
}

// MarshalJSON encodes the chip with its pins in ascending order.
func (c *Chip) MarshalJSON() ([]byte, error) {
	out := chipJSON{
		Name:  c.name,
		Title: c.title,
		Dip:   c.count,
		Width: int(c.width),
		Pins:  make([]pinJSON, 0, c.count),
	}
	for n := 1; n <= c.count; n++ {
		out.Pins = append(out.Pins, pinJSON{Number: n, Names: c.Pin(n).Names()})
	}
	return json.Marshal(out)
}
