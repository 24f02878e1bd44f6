// Package sample ships the built-in WIF ECM demo requirement set: five
// system requirements, six software requirements, four diagnostic
// requirements and the sixteen calibration parameters they reference.
// It exists so the pipeline can be exercised end to end without a
// customer requirements workbook.
package sample

import (
	"fmt"
	"strings"

	"wifgen/internal/req"
	"wifgen/internal/workbook"
)

// Workbook returns a fresh copy of the demo requirement workbook.
func Workbook() *workbook.Workbook {
	return &workbook.Workbook{Sheets: []workbook.Sheet{
		{
			Name:   req.SheetSystem,
			Header: []string{"Req_ID", "Description", "ASIL_Level", "Calibration_Params"},
			Rows: [][]string{
				{"SYS_WIF_001", "The ECM shall detect water in fuel when sensor resistance is below 1000 ohms", "ASIL-A", "CAL_WIF_Resistance_Threshold"},
				{"SYS_WIF_002", "The ECM shall activate water warning indicator within 200ms of water detection", "ASIL-A", "CAL_WIF_Warning_Delay"},
				{"SYS_WIF_003", "The ECM shall store DTC P242F when water is detected in fuel filter", "ASIL-A", "CAL_WIF_DTC_Debounce"},
				{"SYS_WIF_004", "The ECM shall inhibit fuel injection if water level exceeds critical threshold", "ASIL-A", "CAL_WIF_Critical_Level"},
				{"SYS_WIF_005", "The ECM shall reset water detection status when sensor resistance exceeds 5000 ohms", "QM", "CAL_WIF_Reset_Threshold"},
			},
		},
		{
			Name:   req.SheetSoftware,
			Header: []string{"Req_ID", "Description", "ASIL_Level", "Parent_System_Req", "Calibration_Params"},
			Rows: [][]string{
				{"SW_WIF_001", "The WIF sensor reading function shall sample ADC at 10ms intervals", "ASIL-A", "SYS_WIF_001", "CAL_WIF_Sample_Rate"},
				{"SW_WIF_002", "The WIF status calculation shall apply debounce of 5 consecutive samples", "ASIL-A", "SYS_WIF_002", "CAL_WIF_Debounce_Count"},
				{"SW_WIF_003", "The WIF module shall calculate sensor resistance from ADC counts using calibration curve", "ASIL-A", "SYS_WIF_001", "CAL_WIF_Cal_Curve_A, CAL_WIF_Cal_Curve_B"},
				{"SW_WIF_004", "The WIF module shall update CAN signal WIF_Status every 100ms", "ASIL-A", "SYS_WIF_002", "CAL_WIF_CAN_Period"},
				{"SW_WIF_005", "The WIF fault detection shall trigger callback to DTC handler when threshold exceeded", "ASIL-A", "SYS_WIF_003", "CAL_WIF_Fault_Threshold"},
				{"SW_WIF_006", "The WIF module shall validate sensor input range 0-65535 ADC counts", "QM", "SYS_WIF_001", "CAL_WIF_ADC_Min, CAL_WIF_ADC_Max"},
			},
		},
		{
			Name:   req.SheetDiagnostic,
			Header: []string{"Req_ID", "Description", "ASIL_Level", "DTC_Code", "Calibration_Params"},
			Rows: [][]string{
				{"DIAG_WIF_001", "DTC P242F shall be set when water in fuel filter is detected", "ASIL-A", "P242F", "CAL_WIF_DTC_Debounce"},
				{"DIAG_WIF_002", "DTC P242E shall be set when WIF sensor circuit is open", "ASIL-A", "P242E", "CAL_WIF_Open_Circuit_Threshold"},
				{"DIAG_WIF_003", "DTC aging shall require 40 warm-up cycles without fault for DTC clearance", "QM", "P242F", "CAL_WIF_Aging_Cycles"},
				{"DIAG_WIF_004", "Freeze frame data shall capture WIF sensor resistance at time of fault", "QM", "P242F", "CAL_WIF_Freeze_Frame_Config"},
			},
		},
		{
			Name:   req.SheetCalibration,
			Header: []string{"Parameter", "Unit", "Default_Value", "Min", "Max"},
			Rows: [][]string{
				{"CAL_WIF_Resistance_Threshold", "ohms", "1000", "100", "10000"},
				{"CAL_WIF_Warning_Delay", "ms", "200", "50", "1000"},
				{"CAL_WIF_DTC_Debounce", "cycles", "3", "1", "10"},
				{"CAL_WIF_Critical_Level", "ohms", "500", "100", "1000"},
				{"CAL_WIF_Reset_Threshold", "ohms", "5000", "1000", "10000"},
				{"CAL_WIF_Sample_Rate", "ms", "10", "5", "100"},
				{"CAL_WIF_Debounce_Count", "count", "5", "1", "20"},
				{"CAL_WIF_Cal_Curve_A", "ohms/count", "0.1", "0.01", "1.0"},
				{"CAL_WIF_Cal_Curve_B", "offset", "0", "-100", "100"},
				{"CAL_WIF_CAN_Period", "ms", "100", "50", "500"},
				{"CAL_WIF_Fault_Threshold", "ohms", "800", "100", "2000"},
				{"CAL_WIF_ADC_Min", "counts", "0", "0", "1000"},
				{"CAL_WIF_ADC_Max", "counts", "65535", "32768", "65535"},
				{"CAL_WIF_Open_Circuit_Threshold", "ohms", "60000", "50000", "65535"},
				{"CAL_WIF_Aging_Cycles", "cycles", "40", "1", "100"},
				{"CAL_WIF_Freeze_Frame_Config", "bitmap", "255", "0", "255"},
			},
		},
	}}
}

// Write saves the demo workbook to path. Format "csv" writes a
// directory of per-sheet CSV files, "yaml" a single workbook file.
func Write(path, format string) error {
	wb := Workbook()
	switch strings.ToLower(format) {
	case "csv":
		return workbook.SaveDir(wb, path)
	case "yaml", "yml":
		return workbook.SaveFile(wb, path)
	}
	return fmt.Errorf("unknown sample format %q (want csv or yaml)", format)
}
