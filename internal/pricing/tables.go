package pricing

// Court pricing derived from the Rivercrest court database. Dollar amounts.

var pierceTable = Table{courts: map[string]CourtRate{
	// Pierce County courts
	"Pierce County District Court":     {Base: 199, Complexity: ComplexityMedium},
	"Tacoma Municipal Court":           {Base: 179, Complexity: ComplexityMedium},
	"Lakewood Municipal Court":         {Base: 189, Complexity: ComplexityMedium},
	"Puyallup Municipal Court":         {Base: 189, Complexity: ComplexityMedium},
	"Federal Way Municipal Court":      {Base: 199, Complexity: ComplexityMedium},
	"University Place Municipal Court": {Base: 179, Complexity: ComplexityLow},
	"Bonney Lake Municipal Court":      {Base: 179, Complexity: ComplexityLow},
	"Fife Municipal Court":             {Base: 179, Complexity: ComplexityLow},
	"Milton Municipal Court":           {Base: 179, Complexity: ComplexityLow},
	"Orting Municipal Court":           {Base: 179, Complexity: ComplexityLow},
	"Sumner Municipal Court":           {Base: 179, Complexity: ComplexityLow},
	"Steilacoom Municipal Court":       {Base: 179, Complexity: ComplexityLow},

	// King County (overflow cases)
	"King County District Court": {Base: 199, Complexity: ComplexityMedium},
	"Seattle Municipal Court":    {Base: 219, Complexity: ComplexityHigh},
	"Auburn Municipal Court":     {Base: 189, Complexity: ComplexityMedium},
	"Kent Municipal Court":       {Base: 189, Complexity: ComplexityMedium},
	"Renton Municipal Court":     {Base: 189, Complexity: ComplexityMedium},

	// Thurston County
	"Thurston County District Court": {Base: 199, Complexity: ComplexityMedium},
	"Olympia Municipal Court":        {Base: 189, Complexity: ComplexityMedium},
	"Lacey Municipal Court":          {Base: 179, Complexity: ComplexityLow},

	DefaultKey: {Base: 199, Complexity: ComplexityMedium},
}}

var rivercrestTable = Table{courts: map[string]CourtRate{
	// King County courts, primary focus
	"Seattle Municipal Court":       {Base: 219, Complexity: ComplexityHigh},
	"King County District Court":    {Base: 199, Complexity: ComplexityMedium},
	"Bellevue Municipal Court":      {Base: 209, Complexity: ComplexityHigh},
	"Kirkland Municipal Court":      {Base: 199, Complexity: ComplexityMedium},
	"Redmond Municipal Court":       {Base: 199, Complexity: ComplexityMedium},
	"Renton Municipal Court":        {Base: 189, Complexity: ComplexityMedium},
	"Kent Municipal Court":          {Base: 189, Complexity: ComplexityMedium},
	"Auburn Municipal Court":        {Base: 189, Complexity: ComplexityMedium},
	"Federal Way Municipal Court":   {Base: 199, Complexity: ComplexityMedium},
	"Burien Municipal Court":        {Base: 189, Complexity: ComplexityMedium},
	"SeaTac Municipal Court":        {Base: 189, Complexity: ComplexityMedium},
	"Tukwila Municipal Court":       {Base: 189, Complexity: ComplexityMedium},
	"Issaquah Municipal Court":      {Base: 189, Complexity: ComplexityMedium},
	"Shoreline Municipal Court":     {Base: 189, Complexity: ComplexityMedium},
	"Bothell Municipal Court":       {Base: 189, Complexity: ComplexityMedium},
	"Woodinville Municipal Court":   {Base: 179, Complexity: ComplexityLow},
	"Sammamish Municipal Court":     {Base: 179, Complexity: ComplexityLow},
	"Mercer Island Municipal Court": {Base: 179, Complexity: ComplexityLow},

	// Snohomish County (overflow)
	"Snohomish County District Court": {Base: 199, Complexity: ComplexityMedium},
	"Everett Municipal Court":         {Base: 199, Complexity: ComplexityMedium},
	"Lynnwood Municipal Court":        {Base: 189, Complexity: ComplexityMedium},

	// Pierce County (overflow)
	"Pierce County District Court": {Base: 199, Complexity: ComplexityMedium},
	"Tacoma Municipal Court":       {Base: 189, Complexity: ComplexityMedium},

	DefaultKey: {Base: 199, Complexity: ComplexityMedium},
}}

var violationModifiers = map[string]int{
	"Speeding 1-10 over":            0,
	"Speeding 11-15 over":           0,
	"Speeding 16-20 over":           25,
	"Speeding 21+ over":             50,
	"Speeding in school zone":       50,
	"Speeding in construction zone": 50,
	"HOV violation":                 0,
	"Red light camera":              -25,
	"Cell phone violation":          0,
	"Seatbelt violation":            0,
	"Insurance violation":           50,
	"Negligent driving":             100,
	"CDL violation":                 150,
	DefaultKey:                      0,
}
