// Package testutil provides shared document fixtures for tests.
package testutil

import "github.com/wicaksn/sertika/internal/dcc"

// LS builds a LangString from alternating code/value pairs.
// Panics on an odd argument count; test-only convenience.
func LS(pairs ...string) dcc.LangString {
	if len(pairs)%2 != 0 {
		panic("testutil.LS: odd number of arguments")
	}
	ls := make(dcc.LangString, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		ls[pairs[i]] = pairs[i+1]
	}
	return ls
}

// CompleteDocument returns a document that passes every step validator
// with used languages id and en. Tests mutate the copy they get.
func CompleteDocument() *dcc.Document {
	return &dcc.Document{
		Software: "sertika",
		Version:  "1.0",
		Administrative: dcc.AdministrativeData{
			Issuer:      dcc.IssuerLaboratory,
			CountryCode: "ID",
			UsedLanguages: []dcc.LanguageRef{
				{Value: "id"},
				{Value: "en"},
			},
			MandatoryLangs: []dcc.LanguageRef{
				{Value: "id"},
			},
			CertificateNumber: "SNSU-2026-0042",
			OrderNumber:       "ORD-0042",
			Place:             dcc.PlaceLaboratory,
		},
		Timeline: dcc.MeasurementTimeline{
			MeasurementStart: "2026-08-01",
			MeasurementEnd:   "2026-08-03",
			IssueDate:        "2026-08-10",
		},
		Objects: []dcc.ObjectDescription{
			{
				Jenis:          LS("id", "Multimeter Digital", "en", "Digital Multimeter"),
				Brand:          "Fluke",
				Type:           "87V",
				IdentityIssuer: dcc.IdentityByManufacturer,
				SerialNumber:   "SN-1234",
				OtherID:        LS("id", "-", "en", "-"),
			},
		},
		ResponsiblePersons: dcc.ResponsiblePersons{
			Pelaksana: []dcc.Person{
				{Name: "Sari", EmployeeID: "198701012010122001", Role: "Pelaksana"},
			},
			Penyelia: []dcc.Person{
				{Name: "Budi", EmployeeID: "197501011999031002", Role: "Penyelia"},
			},
			Kepala: dcc.Person{
				Name: "Rina", EmployeeID: "196901011995122001", Role: "Kepala Laboratorium",
			},
			Direktur: dcc.Person{
				Name: "Agus", EmployeeID: "196501011990031001", Role: "Direktur SNSU",
				MainSigner: true, Signature: true, Timestamp: true,
			},
		},
		Owner: dcc.Owner{
			Name:       "PT Instrumen Nusantara",
			Street:     "Jl. Raya Serpong",
			Number:     "12",
			City:       "Tangerang Selatan",
			State:      "Banten",
			PostalCode: "15314",
			Country:    "Indonesia",
		},
		Methods: []dcc.Method{
			{
				Name:        LS("id", "Perbandingan langsung", "en", "Direct comparison"),
				Description: LS("id", "Dibandingkan terhadap standar", "en", "Compared to the reference standard"),
				Norm:        "EURAMET cg-15",
				RefType:     "basic_methodMeasurementUncertainty",
			},
		},
		Equipment: []dcc.Equipment{
			{
				Name:         LS("id", "Kalibrator multifungsi", "en", "Multifunction calibrator"),
				Manufacturer: LS("id", "Fluke", "en", "Fluke"),
				Model:        LS("id", "5522A", "en", "5522A"),
				SerialNumber: "SN-9876",
				RefType:      "basic_standardUsed",
			},
		},
		Conditions: []dcc.Condition{
			{
				Kind:        "Suhu",
				Description: LS("id", "Suhu ruang", "en", "Ambient temperature"),
				Center: dcc.ValueUnit{
					Value: "23",
					Unit:  dcc.Unit{Symbol: "degC", SymbolPDF: "°C"},
				},
				Range: dcc.ValueUnit{
					Value: "1",
					Unit:  dcc.Unit{Symbol: "degC", SymbolPDF: "°C"},
				},
			},
		},
		Results: []dcc.ResultTable{
			{
				Title: LS("id", "Tegangan DC", "en", "DC Voltage"),
				Columns: []dcc.Column{
					{Kolom: []string{"Range"}, RefType: "basic_measuredValue", RealList: "1"},
					{Kolom: []string{"Reading"}, RefType: "basic_measuredValue", RealList: "2"},
				},
				Uncertainty: dcc.Uncertainty{
					Factor:       "2",
					Probability:  "95",
					Distribution: "normal",
					RealList:     "1",
				},
			},
		},
		Statements: []dcc.Statement{
			{
				Text:    LS("id", "Hasil tertelusur ke SI", "en", "Results are traceable to the SI"),
				RefType: "basic_conformity",
			},
		},
		Comment: dcc.Comment{
			Title:       "Catatan",
			Description: LS("id", "Tidak ada", "en", "None"),
		},
		Excel:     "uploads/results-0042.xlsx",
		SheetName: "DCV",
	}
}
