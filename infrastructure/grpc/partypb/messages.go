// Package partypb holds the wire messages and service descriptor of party.v1.PartyService.
// Messages travel as JSON through the codec registered in codec.go and
// mirror proto/party/v1/party.proto.
package partypb

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type ListCharactersRequest struct{}

type ListCharactersResponse struct {
	Characters []*Character `json:"characters"`
}

type GeneratePartiesRequest struct {
	Ids      []int64 `json:"ids"`
	MinSize  int32   `json:"min_size,omitempty"`
	MaxSize  int32   `json:"max_size,omitempty"`
	Strategy string  `json:"strategy,omitempty"`
	Seed     *uint64 `json:"seed,omitempty"`
}

type GeneratePartiesResponse struct {
	Parties []*Party `json:"parties"`
	Stats   *Stats   `json:"stats"`
}

type Character struct {
	Id         int64  `json:"id"`
	Name       string `json:"name"`
	Race       string `json:"race"`
	CharClass  string `json:"char_class"`
	Level      int32  `json:"level"`
	Player     string `json:"player"`
	Background string `json:"background,omitempty"`
}

type Party struct {
	Members      []*Character     `json:"members"`
	TotalLevel   int32            `json:"total_level"`
	AverageLevel float64          `json:"average_level"`
	ClassCounts  map[string]int32 `json:"class_counts"`
}

type Stats struct {
	Strategy    string `json:"strategy"`
	Characters  int32  `json:"characters"`
	Parties     int32  `json:"parties"`
	SeedSpread  int32  `json:"seed_spread"`
	FinalSpread int32  `json:"final_spread"`
	Iterations  int32  `json:"iterations"`
}
