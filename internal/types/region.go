package types

// Region is an autonomous community or a province, identified by Code
// within its parent scope
type Region struct {
	Code string `json:"code" example:"13"`
	Name string `json:"name" example:"Comunidad de Madrid"`
}

// Municipality carries no stable id; its coordinates are what the weather
// lookup receives
type Municipality struct {
	Name        string `json:"name"`
	Coordinates Coords `json:"coordinates"`
}
