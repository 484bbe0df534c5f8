package catalog

// OptionType is the semantic selection kind of a group.
type OptionType struct {
	Name string
}

// Code returns the wire value for the option type.
func (t OptionType) Code() string {
	return t.Name
}

type optionTypeEnum struct {
	Topping        OptionType
	Sauce          OptionType
	Dressing       OptionType
	Side           OptionType
	RequiredOption OptionType
	Beverage       OptionType
	Extra          OptionType
}

// OptionTypes enumerates the selection kinds a group may declare.
var OptionTypes = optionTypeEnum{
	Topping:        OptionType{Name: "topping"},
	Sauce:          OptionType{Name: "sauce"},
	Dressing:       OptionType{Name: "dressing"},
	Side:           OptionType{Name: "side"},
	RequiredOption: OptionType{Name: "required_option"},
	Beverage:       OptionType{Name: "beverage"},
	Extra:          OptionType{Name: "extra"},
}

// AllOptionTypes lists every known option type.
var AllOptionTypes = []OptionType{
	OptionTypes.Topping,
	OptionTypes.Sauce,
	OptionTypes.Dressing,
	OptionTypes.Side,
	OptionTypes.RequiredOption,
	OptionTypes.Beverage,
	OptionTypes.Extra,
}

// OptionTypeByName returns the option type for a given name, or nil if not found.
func OptionTypeByName(name string) *OptionType {
	for _, t := range AllOptionTypes {
		if t.Name == name {
			return &t
		}
	}
	return nil
}
