package szfake

import (
	"encoding/json"
	"fmt"

	"github.com/brianmacy/sz-sdk-go/pkg/sz/internal/ffi"
	"github.com/brianmacy/sz-sdk-go/pkg/sz/szerror"
)

func (l *Library) DiagnosticDestroy() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.destroys[szerror.ComponentDiagnostic]++
	l.destroyOrder = append(l.destroyOrder, szerror.ComponentDiagnostic)
	return 0
}

func (l *Library) DiagnosticCheckRepositoryPerformance(secondsToRun int64) ffi.PointerResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, ok := l.diagnosticReadyLocked(); !ok {
		return ffi.PointerResult{ReturnCode: code}
	}
	resp := struct {
		NumRecordsInserted int64 `json:"numRecordsInserted"`
		InsertTime         int64 `json:"insertTime"`
	}{NumRecordsInserted: 998, InsertTime: secondsToRun * 1000}
	return ffi.PointerResult{Response: l.allocLocked(encode(resp))}
}

func (l *Library) DiagnosticGetRepositoryInfo() ffi.PointerResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, ok := l.diagnosticReadyLocked(); !ok {
		return ffi.PointerResult{ReturnCode: code}
	}
	type dataStore struct {
		ID       string `json:"id"`
		Type     string `json:"type"`
		Location string `json:"location"`
	}
	resp := struct {
		DataStores []dataStore `json:"dataStores"`
	}{DataStores: []dataStore{{ID: "CORE", Type: "sqlite3", Location: "fake"}}}
	return ffi.PointerResult{Response: l.allocLocked(encode(resp))}
}

// DiagnosticGetFeature models feature IDs as entity IDs: every resolved
// entity owns one feature with its own ID.
func (l *Library) DiagnosticGetFeature(featureID int64) ffi.PointerResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, ok := l.diagnosticReadyLocked(); !ok {
		return ffi.PointerResult{ReturnCode: code}
	}
	if _, ok := l.entities[featureID]; !ok {
		return l.failPtrLocked(szerror.ComponentDiagnostic, 2089, fmt.Sprintf("Feature not found: %d", featureID))
	}
	resp := struct {
		LibFeatID int64  `json:"LIB_FEAT_ID"`
		FtypeCode string `json:"FTYPE_CODE"`
		Elements  []any  `json:"ELEMENTS"`
	}{LibFeatID: featureID, FtypeCode: "NAME", Elements: []any{}}
	return ffi.PointerResult{Response: l.allocLocked(encode(resp))}
}

func (l *Library) DiagnosticPurgeRepository() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, ok := l.diagnosticReadyLocked(); !ok {
		return code
	}
	l.records = make(map[recordKey]*fakeRecord)
	l.entities = make(map[int64][]recordKey)
	l.redo = nil
	l.nextEntityID = 1
	return 0
}

func (l *Library) diagnosticReadyLocked() (int64, bool) {
	if code, failed := l.injectedLocked(szerror.ComponentDiagnostic); failed {
		return code, false
	}
	if !l.engineInited {
		return l.failLocked(szerror.ComponentDiagnostic, 50, "Module not initialized"), false
	}
	return 0, true
}

func (l *Library) ProductInit(moduleName, settings string, verbose bool) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if code, failed := l.injectedLocked(szerror.ComponentProduct); failed {
		return code
	}
	if settings == "" || !json.Valid([]byte(settings)) {
		return l.failLocked(szerror.ComponentProduct, 14, "Invalid datastore configuration")
	}
	l.inits[szerror.ComponentProduct]++
	l.productInited = true
	return 0
}

func (l *Library) ProductDestroy() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.destroys[szerror.ComponentProduct]++
	l.destroyOrder = append(l.destroyOrder, szerror.ComponentProduct)
	l.productInited = false
	return 0
}

func (l *Library) ProductGetVersion() ffi.Ptr {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.productInited {
		return 0
	}
	if l.versionPtr == 0 {
		version := struct {
			ProductName  string `json:"PRODUCT_NAME"`
			Version      string `json:"VERSION"`
			BuildVersion string `json:"BUILD_VERSION"`
			BuildDate    string `json:"BUILD_DATE"`
		}{
			ProductName:  "Senzing SDK",
			Version:      "4.0.0",
			BuildVersion: "4.0.0.26015",
			BuildDate:    "2026-01-15",
		}
		l.versionPtr = l.allocStaticLocked(encode(version))
	}
	return l.versionPtr
}

func (l *Library) ProductGetLicense() ffi.Ptr {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.productInited {
		return 0
	}
	if l.licensePtr == 0 {
		license := struct {
			Customer    string `json:"customer"`
			LicenseType string `json:"licenseType"`
			IssueDate   string `json:"issueDate"`
			ExpireDate  string `json:"expireDate"`
			RecordLimit int64  `json:"recordLimit"`
		}{
			Customer:    "Evaluation",
			LicenseType: "EVAL",
			IssueDate:   "2026-01-01",
			ExpireDate:  "2027-01-01",
			RecordLimit: 100000,
		}
		l.licensePtr = l.allocStaticLocked(encode(license))
	}
	return l.licensePtr
}
