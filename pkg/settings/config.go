package settings

type Config struct {
	Queue  Queue  `mapstructure:"queue"`
	Demo   Demo   `mapstructure:"demo"`
	Logger Logger `mapstructure:"logger"`
}

// Queue is the configuration for the bounded message queue
type Queue struct {
	Capacity int    `mapstructure:"capacity" validate:"gt=0"`
	Mode     string `mapstructure:"mode" validate:"oneof=fifo lifo"`
	Backing  string `mapstructure:"backing" validate:"oneof=ring list"`
}

// Demo is the configuration for the producer/listener demonstration harness
type Demo struct {
	Producers       int `mapstructure:"producers" validate:"gte=1"`
	Listeners       int `mapstructure:"listeners" validate:"gte=1"`
	ProduceMinMs    int `mapstructure:"produce_min_ms" validate:"gte=0"`
	ProduceMaxMs    int `mapstructure:"produce_max_ms" validate:"gtefield=ProduceMinMs"`
	ConsumeMinMs    int `mapstructure:"consume_min_ms" validate:"gte=0"`
	ConsumeMaxMs    int `mapstructure:"consume_max_ms" validate:"gtefield=ConsumeMinMs"`
	ModeFlipSeconds int `mapstructure:"mode_flip_seconds" validate:"gte=0"` // 0 disables flipping
	RunSeconds      int `mapstructure:"run_seconds" validate:"gte=0"`       // 0 runs until interrupted
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `mapstructure:"log_level" validate:"omitempty,oneof=debug info warn error"`
	FileLogName string `mapstructure:"file_log_name"`
	MaxBackups  int    `mapstructure:"max_backups"`
	MaxAge      int    `mapstructure:"max_age"`
	MaxSize     int    `mapstructure:"max_size"`
	Compress    bool   `mapstructure:"compress"`
}
