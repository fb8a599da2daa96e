package system

// InputState holds the player controls sampled for one tick
type InputState struct {
	Left     bool
	Right    bool
	Jump     bool
	Attack   bool // edge triggered
	Interact bool // edge triggered
	// Shop purchases, edge triggered
	BuyDamage  bool
	BuyArmor   bool
	BuyStamina bool
}

// InputSystem translates sampled controls into intents
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// Intents converts one tick of input into player intents, in apply order
func (s *InputSystem) Intents(in InputState) []Intent {
	intents := make([]Intent, 0, 4)

	// Right wins when both directions are held
	dir := 0
	if in.Right {
		dir = 1
	} else if in.Left {
		dir = -1
	}
	intents = append(intents, MoveIntent{Dir: dir})

	if in.Jump {
		intents = append(intents, JumpIntent{})
	}
	if in.Interact {
		intents = append(intents, InteractIntent{})
	}
	if in.BuyDamage {
		intents = append(intents, PurchaseIntent{Attr: AttrDamage})
	}
	if in.BuyArmor {
		intents = append(intents, PurchaseIntent{Attr: AttrArmor})
	}
	if in.BuyStamina {
		intents = append(intents, PurchaseIntent{Attr: AttrStamina})
	}
	if in.Attack {
		intents = append(intents, AttackIntent{})
	}
	return intents
}
