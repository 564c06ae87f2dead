package dto

type HomeResponse struct {
	Categories  []CategoryResponse `json:"categories"`
	Featured    []ProductCard      `json:"featured"`
	BestSellers []ProductCard      `json:"best_sellers"`
	Countdown   CountdownResponse  `json:"countdown"`
	Notices     []string           `json:"notices,omitempty"`
}

type CountdownResponse struct {
	Days    int    `json:"days"`
	Hours   int    `json:"hours"`
	Minutes int    `json:"minutes"`
	Seconds int    `json:"seconds"`
	Label   string `json:"label"`
	Ended   bool   `json:"ended"`
}
