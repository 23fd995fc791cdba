package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile   string
	BatchFile string
	CSVFile   string
	CSVColumn string
	Verbose   bool

	// Script options
	Permissive  bool
	AllowDigits bool

	// Output flags
	JSONOut   string
	CSVOut    string
	SQLiteOut string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		CSVColumn: "telugu_word",
	}
}
