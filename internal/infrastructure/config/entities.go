package config

// SizeConfig is a width/height pair in pixels
type SizeConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// RangeConfig is an inclusive integer range
type RangeConfig struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// HitInstantConfig locates the single damaging frame of an attack
type HitInstantConfig struct {
	FromEnd int `yaml:"fromEnd"`
	Timer   int `yaml:"timer"`
}

type PlayerConfig struct {
	Body           SizeConfig       `yaml:"body"`
	Silhouette     SizeConfig       `yaml:"silhouette"`
	Gravity        float64          `yaml:"gravity"`
	MaxHealth      float64          `yaml:"maxHealth"`
	MaxEndurance   float64          `yaml:"maxEndurance"`
	EnduranceRegen float64          `yaml:"enduranceRegen"`
	MoveSpeed      float64          `yaml:"moveSpeed"`
	JumpVelocity   float64          `yaml:"jumpVelocity"`
	JumpCost       float64          `yaml:"jumpCost"`
	AttackCost     float64          `yaml:"attackCost"`
	HitInstant     HitInstantConfig `yaml:"hitInstant"`
	Animations     map[string]int   `yaml:"animations"`
}

type EnemyConfig struct {
	Style       string           `yaml:"style"` // "melee" or "ranged"
	Body        SizeConfig       `yaml:"body"`
	Silhouette  SizeConfig       `yaml:"silhouette"`
	Search      SizeConfig       `yaml:"search"`
	Gravity     float64          `yaml:"gravity"`
	MaxHealth   float64          `yaml:"maxHealth"`
	Damage      []float64        `yaml:"damage"` // per level tier, tier 1 first
	PatrolSpeed float64          `yaml:"patrolSpeed"`
	ChaseSpeed  float64          `yaml:"chaseSpeed"`
	PatrolDelay RangeConfig      `yaml:"patrolDelay"`
	PatrolWalk  int              `yaml:"patrolWalk"`
	HitInstant  HitInstantConfig `yaml:"hitInstant"`
	ArrowFrom   int              `yaml:"arrowFromEnd"`
	ExpireDelay int              `yaml:"expireDelay"`
	FadeStep    int              `yaml:"fadeStep"`
	Animations  map[string]int   `yaml:"animations"`
}

// DamageForTier returns the damage for a level tier, clamped to the table
func (e EnemyConfig) DamageForTier(tier int) float64 {
	if len(e.Damage) == 0 {
		return 0
	}
	if tier < 1 {
		tier = 1
	}
	if tier > len(e.Damage) {
		tier = len(e.Damage)
	}
	return e.Damage[tier-1]
}

type ArrowConfig struct {
	Size        SizeConfig `yaml:"size"`
	Speed       float64    `yaml:"speed"`
	Drag        float64    `yaml:"drag"`
	DropDivisor float64    `yaml:"dropDivisor"`
}

// ObjectConfig describes a hazard or prop kind
type ObjectConfig struct {
	Size   SizeConfig `yaml:"size"`
	Frames int        `yaml:"frames"`
	Rate   float64    `yaml:"rate,omitempty"` // damage per tick, hazards only
}
