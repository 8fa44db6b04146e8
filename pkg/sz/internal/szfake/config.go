package szfake

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/brianmacy/sz-sdk-go/pkg/sz/internal/ffi"
	"github.com/brianmacy/sz-sdk-go/pkg/sz/szerror"
)

func (l *Library) ConfigInit(moduleName, settings string, verbose bool) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, failed := l.injectedLocked(szerror.ComponentConfig); failed {
		return code
	}
	if settings == "" || !json.Valid([]byte(settings)) {
		return l.failLocked(szerror.ComponentConfig, 14, "Invalid datastore configuration")
	}
	l.inits[szerror.ComponentConfig]++
	l.configInited = true
	return 0
}

func (l *Library) ConfigDestroy() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.destroys[szerror.ComponentConfig]++
	l.destroyOrder = append(l.destroyOrder, szerror.ComponentConfig)
	l.configInited = false
	return 0
}

func (l *Library) ConfigCreate() ffi.PointerResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, ok := l.configReadyLocked(); !ok {
		return ffi.PointerResult{ReturnCode: code}
	}
	templateSources, _ := parseSources(defaultConfigDefinition)
	h := l.handlePtrLocked()
	l.handles[h] = &configHandle{sources: templateSources}
	return ffi.PointerResult{Response: h}
}

func (l *Library) ConfigLoad(configDefinition string) ffi.PointerResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, ok := l.configReadyLocked(); !ok {
		return ffi.PointerResult{ReturnCode: code}
	}
	sources, ok := parseSources(configDefinition)
	if !ok {
		return l.failPtrLocked(szerror.ComponentConfig, 7426, "Malformed configuration definition")
	}
	h := l.handlePtrLocked()
	l.handles[h] = &configHandle{sources: sources}
	return ffi.PointerResult{Response: h}
}

func (l *Library) ConfigExport(configHandle ffi.Ptr) ffi.PointerResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, ok := l.configReadyLocked(); !ok {
		return ffi.PointerResult{ReturnCode: code}
	}
	h, ok := l.liveHandleLocked(configHandle)
	if !ok {
		return l.failPtrLocked(szerror.ComponentConfig, 3, "Invalid configuration handle")
	}
	return ffi.PointerResult{Response: l.allocLocked(buildConfigDefinition(h.sources))}
}

func (l *Library) ConfigClose(configHandle ffi.Ptr) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, ok := l.configReadyLocked(); !ok {
		return code
	}
	if _, ok := l.liveHandleLocked(configHandle); !ok {
		return l.failLocked(szerror.ComponentConfig, 3, "Invalid configuration handle")
	}
	l.handles[configHandle].closed = true
	return 0
}

func (l *Library) ConfigRegisterDataSource(configHandle ffi.Ptr, input string) ffi.PointerResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, ok := l.configReadyLocked(); !ok {
		return ffi.PointerResult{ReturnCode: code}
	}
	h, ok := l.liveHandleLocked(configHandle)
	if !ok {
		return l.failPtrLocked(szerror.ComponentConfig, 3, "Invalid configuration handle")
	}
	code, ok := dataSourceCode(input)
	if !ok {
		return l.failPtrLocked(szerror.ComponentConfig, 3, "Invalid or missing input value: DSRC_CODE")
	}
	for _, existing := range h.sources {
		if existing == code {
			return l.failPtrLocked(szerror.ComponentConfig, 2208,
				fmt.Sprintf("Data source registry rejected the change: '%s' already registered", code))
		}
	}
	h.sources = append(h.sources, code)
	resp := struct {
		DsrcID int `json:"DSRC_ID"`
	}{DsrcID: 1000 + len(h.sources)}
	return ffi.PointerResult{Response: l.allocLocked(encode(resp))}
}

func (l *Library) ConfigUnregisterDataSource(configHandle ffi.Ptr, input string) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, ok := l.configReadyLocked(); !ok {
		return code
	}
	h, ok := l.liveHandleLocked(configHandle)
	if !ok {
		return l.failLocked(szerror.ComponentConfig, 3, "Invalid configuration handle")
	}
	code, ok := dataSourceCode(input)
	if !ok {
		return l.failLocked(szerror.ComponentConfig, 3, "Invalid or missing input value: DSRC_CODE")
	}
	for i, existing := range h.sources {
		if existing == code {
			h.sources = append(h.sources[:i], h.sources[i+1:]...)
			return 0
		}
	}
	return l.failLocked(szerror.ComponentConfig, 27, fmt.Sprintf("Unknown DATA_SOURCE value '%s'", code))
}

func (l *Library) ConfigGetDataSourceRegistry(configHandle ffi.Ptr) ffi.PointerResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, ok := l.configReadyLocked(); !ok {
		return ffi.PointerResult{ReturnCode: code}
	}
	h, ok := l.liveHandleLocked(configHandle)
	if !ok {
		return l.failPtrLocked(szerror.ComponentConfig, 3, "Invalid configuration handle")
	}
	type dsrc struct {
		ID   int    `json:"DSRC_ID"`
		Code string `json:"DSRC_CODE"`
	}
	resp := struct {
		DataSources []dsrc `json:"DATA_SOURCES"`
	}{DataSources: []dsrc{}}
	for i, code := range h.sources {
		resp.DataSources = append(resp.DataSources, dsrc{ID: i + 1, Code: code})
	}
	return ffi.PointerResult{Response: l.allocLocked(encode(resp))}
}

func (l *Library) ConfigMgrInit(moduleName, settings string, verbose bool) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, failed := l.injectedLocked(szerror.ComponentConfigManager); failed {
		return code
	}
	if settings == "" || !json.Valid([]byte(settings)) {
		return l.failLocked(szerror.ComponentConfigManager, 14, "Invalid datastore configuration")
	}
	l.inits[szerror.ComponentConfigManager]++
	l.configMgrInited = true
	return 0
}

func (l *Library) ConfigMgrDestroy() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.destroys[szerror.ComponentConfigManager]++
	l.destroyOrder = append(l.destroyOrder, szerror.ComponentConfigManager)
	l.configMgrInited = false
	return 0
}

func (l *Library) ConfigMgrRegisterConfig(configDefinition, configComment string) ffi.LongResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, ok := l.configMgrReadyLocked(); !ok {
		return ffi.LongResult{ReturnCode: code}
	}
	if _, ok := parseSources(configDefinition); !ok {
		return l.failLongLocked(szerror.ComponentConfigManager, 7426, "Malformed configuration definition")
	}
	configID := l.nextConfigID
	l.nextConfigID++
	l.configs[configID] = storedConfig{
		definition: configDefinition,
		comment:    configComment,
		createdAt:  "2026-01-01 00:00:00.000",
	}
	return ffi.LongResult{Response: configID}
}

func (l *Library) ConfigMgrGetConfig(configID int64) ffi.PointerResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, ok := l.configMgrReadyLocked(); !ok {
		return ffi.PointerResult{ReturnCode: code}
	}
	cfg, ok := l.configs[configID]
	if !ok {
		return l.failPtrLocked(szerror.ComponentConfigManager, 7344,
			fmt.Sprintf("Configuration not found in the registry: %d", configID))
	}
	return ffi.PointerResult{Response: l.allocLocked(cfg.definition)}
}

func (l *Library) ConfigMgrGetConfigRegistry() ffi.PointerResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, ok := l.configMgrReadyLocked(); !ok {
		return ffi.PointerResult{ReturnCode: code}
	}
	type configInfo struct {
		ConfigID int64  `json:"CONFIG_ID"`
		Comments string `json:"CONFIG_COMMENTS"`
		CreateDT string `json:"SYS_CREATE_DT"`
	}
	resp := struct {
		Configs []configInfo `json:"CONFIGS"`
	}{Configs: []configInfo{}}
	for _, id := range l.sortedConfigIDsLocked() {
		cfg := l.configs[id]
		resp.Configs = append(resp.Configs, configInfo{
			ConfigID: id,
			Comments: cfg.comment,
			CreateDT: cfg.createdAt,
		})
	}
	return ffi.PointerResult{Response: l.allocLocked(encode(resp))}
}

func (l *Library) ConfigMgrGetDefaultConfigID() ffi.LongResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, ok := l.configMgrReadyLocked(); !ok {
		return ffi.LongResult{ReturnCode: code}
	}
	return ffi.LongResult{Response: l.defaultConfigID}
}

func (l *Library) ConfigMgrSetDefaultConfigID(configID int64) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, ok := l.configMgrReadyLocked(); !ok {
		return code
	}
	if _, ok := l.configs[configID]; !ok {
		return l.failLocked(szerror.ComponentConfigManager, 7344,
			fmt.Sprintf("Configuration not found in the registry: %d", configID))
	}
	l.defaultConfigID = configID
	return 0
}

func (l *Library) ConfigMgrReplaceDefaultConfigID(currentConfigID, newConfigID int64) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, ok := l.configMgrReadyLocked(); !ok {
		return code
	}
	if _, ok := l.configs[newConfigID]; !ok {
		return l.failLocked(szerror.ComponentConfigManager, 7344,
			fmt.Sprintf("Configuration not found in the registry: %d", newConfigID))
	}
	if l.defaultConfigID != currentConfigID {
		return l.failLocked(szerror.ComponentConfigManager, 7245,
			"Default configuration changed since it was read")
	}
	l.defaultConfigID = newConfigID
	return 0
}

func (l *Library) configReadyLocked() (int64, bool) {
	if code, failed := l.injectedLocked(szerror.ComponentConfig); failed {
		return code, false
	}
	if !l.configInited {
		return l.failLocked(szerror.ComponentConfig, 49, "Configuration not initialized"), false
	}
	return 0, true
}

func (l *Library) configMgrReadyLocked() (int64, bool) {
	if code, failed := l.injectedLocked(szerror.ComponentConfigManager); failed {
		return code, false
	}
	if !l.configMgrInited {
		return l.failLocked(szerror.ComponentConfigManager, 63, "Configuration manager not initialized"), false
	}
	return 0, true
}

func (l *Library) liveHandleLocked(p ffi.Ptr) (*configHandle, bool) {
	h, ok := l.handles[p]
	if !ok || h.closed {
		return nil, false
	}
	return h, true
}

func (l *Library) sortedConfigIDsLocked() []int64 {
	ids := make([]int64, 0, len(l.configs))
	for id := range l.configs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func dataSourceCode(input string) (string, bool) {
	var doc struct {
		Code string `json:"DSRC_CODE"`
	}
	if err := json.Unmarshal([]byte(input), &doc); err != nil || doc.Code == "" {
		return "", false
	}
	return doc.Code, true
}
