package config

// GameConfig is the root config for game.json
type GameConfig struct {
	Display   DisplayConfig   `json:"display"`
	Rules     RulesConfig     `json:"rules"`
	Waves     WavesConfig     `json:"waves"`
	Player    PlayerConfig    `json:"player"`
	Obstacles ObstaclesConfig `json:"obstacles"`
	Log       LogConfig       `json:"log"`
}

type DisplayConfig struct {
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Scale        int    `json:"scale"`
	Framerate    int    `json:"framerate"`
	Title        string `json:"title"`
}

type RulesConfig struct {
	Lives         int           `json:"lives"`
	HitboxPadding PaddingConfig `json:"hitboxPadding"`
}

// PaddingConfig is the inward shrink applied to every side of a bounding rect
type PaddingConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type WavesConfig struct {
	Ground WaveConfig `json:"ground"`
	Aerial WaveConfig `json:"aerial"`
}

// WaveConfig is one timed spawn schedule
type WaveConfig struct {
	Count           int       `json:"count"`
	IntervalMs      int       `json:"intervalMs"`
	Margins         []float64 `json:"margins"`
	SecondaryMargin float64   `json:"secondaryMargin,omitempty"` // aerial bottom margin
}

type PlayerConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Speed  float64 `json:"speed"` // units per tick
	StartX float64 `json:"startX"`
	StartY float64 `json:"startY"`
}

type ObstaclesConfig struct {
	Ground ObstacleConfig `json:"ground"`
	Aerial ObstacleConfig `json:"aerial"`
}

type ObstacleConfig struct {
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Speed    float64 `json:"speed"`
	BobSpeed float64 `json:"bobSpeed,omitempty"`
}

type LogConfig struct {
	Level string `json:"level"`
}
