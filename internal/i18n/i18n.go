// Package i18n provides the message catalogs for the dashboard chrome.
// Map-based bundles, English fallback.
package i18n

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownLanguage = errors.New("unknown language")

var bundles = map[string]map[string]string{
	"en": {
		"header":            "=== SEPDASH ===",
		"fields":            "Fields:",
		"editing":           "Editing:",
		"preview":           "Preview:",
		"processes":         "Processes:",
		"help_title":        "Help",
		"cmd_prompt":        "Command Bar",
		"help_bar":          ":q quit | Enter edit/confirm | Esc back | Tab complete | :run launch | :help help",
		"process_id":        "ID",
		"process_pid":       "PID",
		"process_cmd":       "Command",
		"process_status":    "Status",
		"process_start":     "Started",
		"process_none":      "No processes",
		"status_running":    "Running",
		"status_completed":  "Completed",
		"status_killed":     "Killed",
		"status_failed":     "Failed",
		"kill_success":      "Process terminated",
		"kill_all_success":  "All processes terminated",
		"kill_error":        "Failed to terminate process",
		"process_created":   "Process created",
		"process_error":     "Process start failed",
		"hidden_marker":     "[hidden]",
		"debug_on":          "Debug mode on: all fields shown",
		"debug_off":         "Debug mode off: hidden fields concealed",
		"switched_screen":   "Switched to",
		"unknown_command":   "Unknown command",
		"saved_to":          "Configuration saved to",
		"saved_cache":       "Configuration saved",
		"imported_from":     "Configuration imported from",
		"import_usage":      "Usage: import <path>",
		"language_switched": "Language switched to",
		"language_usage":    "Available languages",
		"no_args":           "No valid arguments configured",
		"history_empty":     "No run history",
		"cleared":           "Cleared finished processes",
	},
	"zh": {
		"header":            "=== SEPDASH ===",
		"fields":            "字段:",
		"editing":           "编辑:",
		"preview":           "预览:",
		"processes":         "进程管理:",
		"help_title":        "帮助",
		"cmd_prompt":        "命令栏",
		"help_bar":          ":q 退出 | Enter 编辑/确认 | Esc 回退 | Tab 补全 | :run 运行 | :help 帮助",
		"process_id":        "ID",
		"process_pid":       "PID",
		"process_cmd":       "命令",
		"process_status":    "状态",
		"process_start":     "启动时间",
		"process_none":      "无运行进程",
		"status_running":    "运行中",
		"status_completed":  "已完成",
		"status_killed":     "已终止",
		"status_failed":     "失败",
		"kill_success":      "已终止进程",
		"kill_all_success":  "已终止所有进程",
		"kill_error":        "无法终止进程",
		"process_created":   "进程已创建",
		"process_error":     "进程启动失败",
		"hidden_marker":     "[隐藏]",
		"debug_on":          "调试模式已开启：显示所有字段",
		"debug_off":         "调试模式已关闭：只显示可见字段",
		"switched_screen":   "切换到",
		"unknown_command":   "未知命令",
		"saved_to":          "配置已保存到",
		"saved_cache":       "配置已保存",
		"imported_from":     "配置已导入",
		"import_usage":      "用法: import <path>",
		"language_switched": "语言切换为",
		"language_usage":    "可用语言",
		"no_args":           "没有有效的参数配置",
		"history_empty":     "无运行历史",
		"cleared":           "已清理完成的进程",
	},
}

// Catalog resolves message keys for one active language.
type Catalog struct {
	lang string
}

// New returns a catalog for the given language, falling back to English when
// the code is unknown.
func New(lang string) *Catalog {
	if _, ok := bundles[lang]; !ok {
		lang = "en"
	}
	return &Catalog{lang: lang}
}

func (c *Catalog) Language() string { return c.lang }

// SetLanguage switches the active bundle.
func (c *Catalog) SetLanguage(code string) error {
	if _, ok := bundles[code]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownLanguage, code)
	}
	c.lang = code
	return nil
}

// T resolves a message key, falling back to English and finally to the key
// itself so a missing entry stays visible instead of crashing a render.
func (c *Catalog) T(key string) string {
	if msg, ok := bundles[c.lang][key]; ok {
		return msg
	}
	if msg, ok := bundles["en"][key]; ok {
		return msg
	}
	return key
}

// Languages lists the available bundle codes, sorted.
func Languages() []string {
	out := make([]string, 0, len(bundles))
	for code := range bundles {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}
