package profile

// U8, U16, and Bool take the address of a literal, for building Profile
// values with optional fields without a temporary variable.
func U8(v uint8) *uint8    { return &v }
func U16(v uint16) *uint16 { return &v }
func Bool(v bool) *bool    { return &v }
