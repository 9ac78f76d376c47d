package core

// BuildArgs assembles the worker argument list for a screen, deterministically
// and with no side effects. Rules:
//   - the preset pseudo-field never appears
//   - a field with no entry in the screen's flag mapping is skipped
//   - empty values (per Value.IsEmpty) are skipped entirely; bool false and
//     num 0 are not empty
//   - bool fields emit the bare flag when true, nothing when false
//   - everything else emits the flag and the stringified value as two tokens
func BuildArgs(screen *Screen, fields []*Field) []string {
	if screen == nil {
		return nil
	}
	args := make([]string, 0, 2*len(fields))
	for _, f := range fields {
		if f.Name == PresetFieldName {
			continue
		}
		flag, ok := screen.Flags[f.Name]
		if !ok {
			continue
		}
		if f.Value.IsEmpty(f.Type) {
			continue
		}
		if f.Type == FieldBool {
			if truthy[f.Value.String()] {
				args = append(args, flag)
			}
			continue
		}
		args = append(args, flag, f.Value.String())
	}
	return args
}
