package config

// Cbuildfile represents the structure of the cbuild.yaml configuration file.
type Cbuildfile struct {
	Version   string   `yaml:"version"`
	Compiler  string   `yaml:"compiler"`
	SrcDirs   []string `yaml:"src_dirs"`
	SrcExt    string   `yaml:"src_ext"`
	HeaderExt string   `yaml:"header_ext"`
	BinDir    string   `yaml:"bin_dir"`
	Out       string   `yaml:"out"`
	CFlags    []string `yaml:"cflags"`
	LDFlags   []string `yaml:"ldflags"`
	Stale     string   `yaml:"stale"`
	CacheFile string   `yaml:"cache_file"`
}
