package goods

import "sync"

// Default returns the built-in trade tables. The store is built once on
// first use.
var Default = sync.OnceValue(func() *Store {
	s, err := NewStore(defaultRolls(), defaultPrices())
	if err != nil {
		panic("goods: built-in tables: " + err.Error())
	}
	return s
})

func defaultRolls() map[Season][]Range {
	return map[Season][]Range{
		SeasonSpring: {
			{1, 9, "fish"},
			{10, 19, "grain"},
			{20, 25, "fabric"},
			{26, 30, "pottery"},
			{31, 35, "hides"},
			{36, 45, "timber"},
			{46, 48, "citrus"},
			{49, 51, "olives"},
			{52, 56, "ores"},
			{57, 62, "livestock"},
			{63, 67, "tools"},
			{68, 72, "herbs"},
			{73, 77, "stone"},
			{78, 81, "spices"},
			{82, 85, "glass"},
			{86, 90, "metal"},
			{91, 92, "books"},
			{93, 94, "armaments"},
			{95, 95, "jewelry"},
			{96, 100, "alcohol"},
		},
		SeasonSummer: {
			{1, 10, "fish"},
			{11, 20, "grain"},
			{21, 25, "fabric"},
			{26, 30, "pottery"},
			{31, 35, "hides"},
			{36, 45, "timber"},
			{46, 48, "citrus"},
			{49, 51, "olives"},
			{52, 56, "ores"},
			{57, 62, "livestock"},
			{63, 67, "tools"},
			{68, 72, "herbs"},
			{73, 77, "stone"},
			{78, 81, "spices"},
			{82, 85, "glass"},
			{86, 90, "metal"},
			{91, 92, "books"},
			{93, 94, "armaments"},
			{95, 95, "jewelry"},
			{96, 100, "alcohol"},
		},
		SeasonAutumn: {
			{1, 8, "fish"},
			{9, 20, "grain"},
			{21, 26, "fabric"},
			{27, 30, "pottery"},
			{31, 35, "hides"},
			{36, 45, "timber"},
			{46, 48, "citrus"},
			{49, 51, "olives"},
			{52, 56, "ores"},
			{57, 62, "livestock"},
			{63, 67, "tools"},
			{68, 72, "herbs"},
			{73, 77, "stone"},
			{78, 81, "spices"},
			{82, 85, "glass"},
			{86, 90, "metal"},
			{91, 92, "books"},
			{93, 94, "armaments"},
			{95, 95, "jewelry"},
			{96, 100, "alcohol"},
		},
		SeasonWinter: {
			{1, 8, "fish"},
			{9, 18, "grain"},
			{19, 23, "fabric"},
			{24, 28, "pottery"},
			{29, 33, "hides"},
			{34, 43, "timber"},
			{44, 46, "citrus"},
			{47, 49, "olives"},
			{50, 54, "ores"},
			{55, 60, "livestock"},
			{61, 65, "tools"},
			{66, 70, "herbs"},
			{71, 75, "stone"},
			{76, 79, "spices"},
			{80, 83, "glass"},
			{84, 88, "metal"},
			{89, 90, "books"},
			{91, 92, "armaments"},
			{93, 93, "jewelry"},
			{94, 100, "alcohol"},
		},
	}
}

// Prices are spring, summer, autumn, winter.
func defaultPrices() map[string]SeasonPrices {
	return map[string]SeasonPrices{
		"fish":      {Price("0.5"), Price("0.5"), Price("0.5"), Price("1")},
		"grain":     {Price("1"), Price("1"), Price("0.25"), Price("0.5")},
		"fabric":    {Price("1"), Price("1.5"), Price("2"), Price("3")},
		"pottery":   {Price("2"), Price("1.5"), Price("2"), Price("2.5")},
		"hides":     {Price("3"), Price("2.5"), Price("3"), Price("3.5")},
		"timber":    {Price("3"), Price("1.5"), Price("2"), Price("3.5")},
		"citrus":    {Price("3"), Price("1"), Price("0.5"), Price("1")},
		"olives":    {Price("3"), Price("2"), Price("2"), Price("3")},
		"ores":      {Price("3"), Price("3"), Price("3"), Price("3")},
		"livestock": {Price("4"), Price("3"), Price("3"), Price("5")},
		"tools":     {Price("4"), Price("4"), Price("4"), Price("5")},
		"herbs":     {Price("5"), Price("4"), Price("5"), Price("6")},
		"stone":     {Price("5"), Price("5"), Price("5"), Price("5")},
		"spices":    {Price("6"), Price("6"), Price("6"), Price("6")},
		"glass":     {Price("7"), Price("6.5"), Price("6"), Price("7.5")},
		"metal":     {Price("8"), Price("8"), Price("8"), Price("8")},
		"books":     {Price("10"), Price("10"), Price("10"), Price("10")},
		"armaments": {Price("12"), Price("10"), Price("8"), Price("10")},
		"jewelry":   {Price("15"), Price("15"), Price("15"), Price("15")},
		"alcohol":   {Special(), Special(), Special(), Special()},
	}
}
