package config

import (
	"fmt"
	"log"
	"os"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// SettingsManager 加载界面设置管理器
// 负责设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager         // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *LoadingScreenSettings // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "loadingscreen"
	settingsProperty = "settings"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: 如果加载设置失败返回错误（不影响创建）
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultLoadingScreenSettings(),
	}

	// 尝试加载已保存的设置
	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认设置
		log.Printf("[Settings] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或属性不存在，使用默认设置
func (sm *SettingsManager) Load() error {
	// 降级模式：无法持久化，使用默认设置
	if sm.gdataManager == nil {
		sm.settings = DefaultLoadingScreenSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultLoadingScreenSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultLoadingScreenSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var loaded LoadingScreenSettings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		sm.settings = DefaultLoadingScreenSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	loaded.Normalize()
	sm.settings = &loaded
	log.Printf("[Settings] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[Settings] Settings saved successfully")
	return nil
}

// LoadFile 从 YAML 文件加载设置（用于可热编辑的外部设置文件）
//
// 文件内容整体替换当前设置；解析失败时保留当前设置并返回错误
func (sm *SettingsManager) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read settings file: %w", err)
	}

	var loaded LoadingScreenSettings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings file: %w", err)
	}

	loaded.Normalize()
	sm.settings = &loaded
	log.Printf("[Settings] Settings reloaded from %s", path)
	return nil
}

// Settings 获取当前设置
//
// 返回的指针在下一次 Load/LoadFile 之前有效，调用方不应缓存
func (sm *SettingsManager) Settings() *LoadingScreenSettings {
	return sm.settings
}

// SetHoldAdditionalSecs 设置附加显示时长（秒）
//
// 负值会被约束为 0
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetHoldAdditionalSecs(secs float64) {
	if secs < 0 {
		secs = 0
	}
	sm.settings.HoldAdditionalSecs = secs
}

// SetForceDisplay 设置是否强制显示加载界面
//
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetForceDisplay(enabled bool) {
	sm.settings.ForceDisplay = enabled
}

// SetLogReasons 设置是否输出判定原因日志
//
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetLogReasons(enabled bool) {
	sm.settings.LogReasons = enabled
}
