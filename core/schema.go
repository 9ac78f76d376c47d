package core

// Screen ids. The dashboard toggles between exactly these two.
const (
	ScreenInference = "inference"
	ScreenTrain     = "train"
)

// PresetFieldName marks the UI-only pseudo-field that never reaches the
// worker command line.
const PresetFieldName = "preset"

var modelTypeOptions = []string{
	"mdx23c", "htdemucs", "segm_models", "mel_band_roformer",
	"bs_roformer", "torchseg", "swin_upernet", "bandit", "scnet",
	"bandit_v2", "apollo", "bs_mamba2", "conformer", "bs_conformer",
	"scnet_tran", "scnet_masked",
}

var deviceIDOptions = []string{"0", "1", "0,1", "1,0", "0,1,2,3"}

// DefaultRegistry builds the full field/screen schema. Field ids are stable:
// inference fields live below 100, training fields at 100 and up.
func DefaultRegistry() *Registry {
	str := func(id int, name string, t FieldType, def string, opts ...string) *Field {
		return &Field{ID: id, Name: name, Type: t, Value: StringValue(def), Default: StringValue(def), Options: opts}
	}
	fields := []*Field{
		str(0, "model_type", FieldEnum, "mdx23c", modelTypeOptions...),
		str(1, PresetFieldName, FieldPath, "./preset"),
		str(2, "config_path", FieldPath, "configs/config_mdx23c_musdb18.yaml"),
		str(3, "start_check_point", FieldPath, ""),
		str(4, "input_folder", FieldPath, ""),
		str(5, "store_dir", FieldPath, "separation_results"),
		str(6, "device_ids", FieldEnum, "0", deviceIDOptions...),
		{ID: 7, Name: "extract_instrumental", Type: FieldBool, Value: BoolValue(false), Default: BoolValue(false)},
		{ID: 8, Name: "verbose", Type: FieldBool, Value: BoolValue(false), Default: BoolValue(false)},
		{ID: 9, Name: "float32", Type: FieldBool, Value: BoolValue(false), Default: BoolValue(false)},

		str(100, "model_type", FieldEnum, "mdx23c", modelTypeOptions...),
		str(101, "config_path", FieldPath, "configs/config_mdx23c_musdb18.yaml"),
		str(102, "start_check_point", FieldPath, ""),
		str(103, "results_path", FieldPath, "results"),
		str(104, "data_path", FieldPath, ""),
		str(105, "valid_path", FieldPath, ""),
		{ID: 106, Name: "num_workers", Type: FieldNum, Value: IntValue(4), Default: IntValue(4)},
		str(107, "device_ids", FieldEnum, "0", deviceIDOptions...),
	}

	screens := []*Screen{
		{
			ID:    ScreenInference,
			Title: "Inference Config",
			Entry: "inference.py",
			Bindings: []Binding{
				{FieldID: 0, Visible: true},
				{FieldID: 1, Visible: true},
				{FieldID: 2, Visible: true},
				{FieldID: 3, Visible: true},
				{FieldID: 4, Visible: true},
				{FieldID: 5, Visible: true},
				{FieldID: 6, Visible: false},
				{FieldID: 7, Visible: true},
				{FieldID: 8, Visible: false},
				{FieldID: 9, Visible: false},
			},
			Flags: map[string]string{
				"model_type":           "--model_type",
				"config_path":          "--config_path",
				"start_check_point":    "--start_check_point",
				"input_folder":         "--input_folder",
				"store_dir":            "--store_dir",
				"device_ids":           "--device_ids",
				"extract_instrumental": "--extract_instrumental",
				"verbose":              "--verbose",
				"float32":              "--float32",
			},
		},
		{
			ID:    ScreenTrain,
			Title: "Training Config",
			Entry: "train.py",
			Bindings: []Binding{
				{FieldID: 100, Visible: true},
				{FieldID: 101, Visible: true},
				{FieldID: 102, Visible: true},
				{FieldID: 103, Visible: true},
				{FieldID: 104, Visible: true},
				{FieldID: 105, Visible: true},
				{FieldID: 106, Visible: true},
				{FieldID: 107, Visible: true},
			},
			Flags: map[string]string{
				"model_type":        "--model_type",
				"config_path":       "--config_path",
				"start_check_point": "--start_check_point",
				"results_path":      "--results_path",
				"data_path":         "--data_path",
				"valid_path":        "--valid_path",
				"num_workers":       "--num_workers",
				"device_ids":        "--device_ids",
			},
		},
	}

	return NewRegistry(fields, screens)
}

// OtherScreen returns the toggle partner for the screen-switch key.
func OtherScreen(id string) string {
	if id == ScreenInference {
		return ScreenTrain
	}
	return ScreenInference
}
