package schema

import (
	"fmt"

	"github.com/paec-registry/platform/pkg/common/models"
)

type rec = models.Record

// Fixed array expansions. These orderings are contracts: export columns are
// generated from them, and the labels they produce must resolve back on
// import. Entries beyond the fixed cardinality are reported as truncated.
var (
	// Clonidine stimulation protocol samples GH at six timepoints.
	ClonidineTimepoints = []string{"0", "30", "60", "90", "120", "150"}
	// Glucagon stimulation runs longer and samples seven.
	GlucagonTimepoints = []string{"0", "30", "60", "90", "120", "150", "180"}
)

// MaxSiblings is how many sibling slots the tabular formats carry.
const MaxSiblings = 3

func history(r *rec) *models.History {
	if r.History == nil {
		r.History = &models.History{}
	}
	return r.History
}

func examination(r *rec) *models.Examination {
	if r.Examination == nil {
		r.Examination = &models.Examination{}
	}
	return r.Examination
}

func investigations(r *rec) *models.Investigations {
	if r.Investigations == nil {
		r.Investigations = &models.Investigations{}
	}
	return r.Investigations
}

func endocrine(r *rec) *models.EndocrineWorkup {
	if r.Endocrine == nil {
		r.Endocrine = &models.EndocrineWorkup{}
	}
	return r.Endocrine
}

func imaging(r *rec) *models.MRIStudy {
	if r.Imaging == nil {
		r.Imaging = &models.MRIStudy{}
	}
	return r.Imaging
}

func treatment(r *rec) *models.Treatment {
	if r.Treatment == nil {
		r.Treatment = &models.Treatment{}
	}
	return r.Treatment
}

func diagnosis(r *rec) *models.Diagnosis {
	if r.Diagnosis == nil {
		r.Diagnosis = &models.Diagnosis{}
	}
	return r.Diagnosis
}

func remarks(r *rec) *models.Remarks {
	if r.Remarks == nil {
		r.Remarks = &models.Remarks{}
	}
	return r.Remarks
}

func sibling(r *rec, i int) *models.Sibling {
	h := history(r)
	for len(h.Family.Siblings) <= i {
		h.Family.Siblings = append(h.Family.Siblings, models.Sibling{})
	}
	return &h.Family.Siblings[i]
}

func siblingAt(r *rec, i int) *models.Sibling {
	if r.History == nil || len(r.History.Family.Siblings) <= i {
		return nil
	}
	return &r.History.Family.Siblings[i]
}

func ghSlot(slots []*float64, i int) interface{} {
	if len(slots) <= i || slots[i] == nil {
		return nil
	}
	return *slots[i]
}

func setGHSlot(slots []*float64, i int, v interface{}) []*float64 {
	for len(slots) <= i {
		slots = append(slots, nil)
	}
	slots[i] = fp(v)
	return slots
}

// fieldTable enumerates the whole schema in flatten order. It is the single
// source of truth for header synonyms, export labels, cell types, and boolean
// encodings; tests enumerate it to pin the mapping against silent drift.
func fieldTable() []Field {
	var fields []Field
	fields = append(fields, identityFields()...)
	fields = append(fields, historyFields()...)
	fields = append(fields, examinationFields()...)
	fields = append(fields, investigationFields()...)
	fields = append(fields, endocrineFields()...)
	fields = append(fields, imagingFields()...)
	fields = append(fields, treatmentFields()...)
	fields = append(fields, diagnosisFields()...)
	fields = append(fields, remarksFields()...)
	return fields
}

func identityFields() []Field {
	return []Field{
		{Path: "identity.paecNo", Label: "PAEC No", Template: "PAEC", Synonyms: []string{"PAEC NO", "paec no"},
			Kind: KindText, Section: SectionIdentity, NaturalKey: true,
			Get: func(r *rec) interface{} {
				if r.Identity.PaecNo == "" {
					return nil
				}
				return r.Identity.PaecNo
			},
			Set: func(r *rec, v interface{}) { r.Identity.PaecNo = v.(string) }},
		{Path: "identity.name", Label: "Patient Name", Template: "Name", Synonyms: []string{"PATIENT NAME"},
			Kind: KindText, Section: SectionIdentity,
			Get: func(r *rec) interface{} { return sv(r.Identity.Name) },
			Set: func(r *rec, v interface{}) { r.Identity.Name = sp(v) }},
		{Path: "identity.uhid", Label: "UHID",
			Kind: KindText, Section: SectionIdentity,
			Get: func(r *rec) interface{} { return sv(r.Identity.UHID) },
			Set: func(r *rec, v interface{}) { r.Identity.UHID = sp(v) }},
		{Path: "identity.dob", Label: "DOB", Synonyms: []string{"Date of Birth"},
			Kind: KindDate, Section: SectionIdentity,
			Get: func(r *rec) interface{} { return dv(r.Identity.DOB) },
			Set: func(r *rec, v interface{}) { r.Identity.DOB = dp(v) }},
		{Path: "identity.age", Label: "Age", Template: "AgeBL", Synonyms: []string{"AGE"},
			Kind: KindInt, Section: SectionIdentity, ZeroDefault: true,
			Get: func(r *rec) interface{} { return iv(r.Identity.Age) },
			Set: func(r *rec, v interface{}) { r.Identity.Age = ip(v) }},
		{Path: "identity.sex", Label: "Sex", Synonyms: []string{"SEX", "Gender"},
			Kind: KindText, Section: SectionIdentity,
			Get: func(r *rec) interface{} { return sv(r.Identity.Sex) },
			Set: func(r *rec, v interface{}) { r.Identity.Sex = sp(v) }},
		{Path: "identity.address.street", Label: "Address",
			Kind: KindText, Section: SectionIdentity,
			Get: func(r *rec) interface{} { return sv(r.Identity.Address.Street) },
			Set: func(r *rec, v interface{}) { r.Identity.Address.Street = sp(v) }},
		{Path: "identity.address.city", Label: "City",
			Kind: KindText, Section: SectionIdentity,
			Get: func(r *rec) interface{} { return sv(r.Identity.Address.City) },
			Set: func(r *rec, v interface{}) { r.Identity.Address.City = sp(v) }},
		{Path: "identity.address.state", Label: "State",
			Kind: KindText, Section: SectionIdentity,
			Get: func(r *rec) interface{} { return sv(r.Identity.Address.State) },
			Set: func(r *rec, v interface{}) { r.Identity.Address.State = sp(v) }},
		{Path: "identity.contact.cell1", Label: "Phone 1", Synonyms: []string{"Phone no1"},
			Kind: KindText, Section: SectionIdentity, Sensitive: true,
			Get: func(r *rec) interface{} { return sv(r.Identity.Contact.Cell1) },
			Set: func(r *rec, v interface{}) { r.Identity.Contact.Cell1 = sp(v) }},
		{Path: "identity.contact.cell2", Label: "Phone 2", Synonyms: []string{"Phone no2"},
			Kind: KindText, Section: SectionIdentity, Sensitive: true,
			Get: func(r *rec) interface{} { return sv(r.Identity.Contact.Cell2) },
			Set: func(r *rec, v interface{}) { r.Identity.Contact.Cell2 = sp(v) }},
		{Path: "identity.contact.landline", Label: "Landline", Synonyms: []string{"Phone 3"},
			Kind: KindText, Section: SectionIdentity, Sensitive: true,
			Get: func(r *rec) interface{} { return sv(r.Identity.Contact.Landline) },
			Set: func(r *rec, v interface{}) { r.Identity.Contact.Landline = sp(v) }},
		{Path: "visitDate", Label: "Visit Date",
			Kind: KindDate, Section: SectionIdentity,
			Get: func(r *rec) interface{} { return dv(r.VisitDate) },
			Set: func(r *rec, v interface{}) { r.VisitDate = dp(v) }},
	}
}

func historyFields() []Field {
	fields := []Field{
		{Path: "history.shortStatureNoticedAt", Label: "Short Stature Noticed At",
			Kind: KindText, Section: SectionHistory,
			Get: func(r *rec) interface{} {
				if r.History == nil {
					return nil
				}
				return sv(r.History.ShortStatureNoticedAt)
			},
			Set: func(r *rec, v interface{}) { history(r).ShortStatureNoticedAt = sp(v) }},
		{Path: "history.birth.duration", Label: "Birth Duration",
			Kind: KindText, Section: SectionHistory,
			Get: func(r *rec) interface{} {
				if r.History == nil {
					return nil
				}
				return sv(r.History.Birth.Duration)
			},
			Set: func(r *rec, v interface{}) { history(r).Birth.Duration = sp(v) }},
		{Path: "history.birth.deliveryPlace", Label: "Delivery Place",
			Kind: KindText, Section: SectionHistory,
			Get: func(r *rec) interface{} {
				if r.History == nil {
					return nil
				}
				return sv(r.History.Birth.DeliveryPlace)
			},
			Set: func(r *rec, v interface{}) { history(r).Birth.DeliveryPlace = sp(v) }},
		{Path: "history.birth.deliveryNature", Label: "Delivery Nature",
			Kind: KindText, Section: SectionHistory,
			Get: func(r *rec) interface{} {
				if r.History == nil {
					return nil
				}
				return sv(r.History.Birth.DeliveryNature)
			},
			Set: func(r *rec, v interface{}) { history(r).Birth.DeliveryNature = sp(v) }},
		{Path: "history.birth.weight", Label: "Birth Weight",
			Kind: KindFloat, Section: SectionHistory,
			Get: func(r *rec) interface{} {
				if r.History == nil {
					return nil
				}
				return fv(r.History.Birth.Weight)
			},
			Set: func(r *rec, v interface{}) { history(r).Birth.Weight = fp(v) }},
		{Path: "history.birth.length", Label: "Birth Length",
			Kind: KindFloat, Section: SectionHistory,
			Get: func(r *rec) interface{} {
				if r.History == nil {
					return nil
				}
				return fv(r.History.Birth.Length)
			},
			Set: func(r *rec, v interface{}) { history(r).Birth.Length = fp(v) }},
		{Path: "history.birth.hypoxia", Label: "Birth Hypoxia",
			Kind: KindBool, Bool: BoolYesNo, Section: SectionHistory,
			Get: func(r *rec) interface{} {
				if r.History == nil {
					return nil
				}
				return bv(r.History.Birth.Hypoxia)
			},
			Set: func(r *rec, v interface{}) { history(r).Birth.Hypoxia = bp(v) }},
		{Path: "history.puberty.thelarcheAgeYears", Label: "Thelarche Age",
			Kind: KindFloat, Section: SectionHistory,
			Get: func(r *rec) interface{} {
				if r.History == nil {
					return nil
				}
				return fv(r.History.Puberty.ThelarcheAgeYears)
			},
			Set: func(r *rec, v interface{}) { history(r).Puberty.ThelarcheAgeYears = fp(v) }},
		{Path: "history.puberty.menarcheAgeYears", Label: "Menarche Age",
			Kind: KindFloat, Section: SectionHistory,
			Get: func(r *rec) interface{} {
				if r.History == nil {
					return nil
				}
				return fv(r.History.Puberty.MenarcheAgeYears)
			},
			Set: func(r *rec, v interface{}) { history(r).Puberty.MenarcheAgeYears = fp(v) }},
		{Path: "history.family.fatherAge", Label: "Father Age",
			Kind: KindInt, Section: SectionHistory,
			Get: func(r *rec) interface{} {
				if r.History == nil {
					return nil
				}
				return iv(r.History.Family.FatherAge)
			},
			Set: func(r *rec, v interface{}) { history(r).Family.FatherAge = ip(v) }},
		{Path: "history.family.fatherHeight", Label: "Father Height", Template: "FatherHt",
			Kind: KindFloat, Section: SectionHistory,
			Get: func(r *rec) interface{} {
				if r.History == nil {
					return nil
				}
				return fv(r.History.Family.FatherHeight)
			},
			Set: func(r *rec, v interface{}) { history(r).Family.FatherHeight = fp(v) }},
		{Path: "history.family.motherAge", Label: "Mother Age",
			Kind: KindInt, Section: SectionHistory,
			Get: func(r *rec) interface{} {
				if r.History == nil {
					return nil
				}
				return iv(r.History.Family.MotherAge)
			},
			Set: func(r *rec, v interface{}) { history(r).Family.MotherAge = ip(v) }},
		{Path: "history.family.motherHeight", Label: "Mother Height", Template: "MotherHt",
			Kind: KindFloat, Section: SectionHistory,
			Get: func(r *rec) interface{} {
				if r.History == nil {
					return nil
				}
				return fv(r.History.Family.MotherHeight)
			},
			Set: func(r *rec, v interface{}) { history(r).Family.MotherHeight = fp(v) }},
		{Path: "history.family.mph", Label: "MPH",
			Kind: KindFloat, Section: SectionHistory,
			Get: func(r *rec) interface{} {
				if r.History == nil {
					return nil
				}
				return fv(r.History.Family.MPH)
			},
			Set: func(r *rec, v interface{}) { history(r).Family.MPH = fp(v) }},
		{Path: "history.family.mphSds", Label: "MPH SDS",
			Kind: KindFloat, Section: SectionHistory,
			Get: func(r *rec) interface{} {
				if r.History == nil {
					return nil
				}
				return fv(r.History.Family.MPHSDS)
			},
			Set: func(r *rec, v interface{}) { history(r).Family.MPHSDS = fp(v) }},
		{Path: "history.family.shortStatureInFamily", Label: "Short Stature In Family",
			Kind: KindBool, Bool: BoolYesNo, Section: SectionHistory,
			Get: func(r *rec) interface{} {
				if r.History == nil {
					return nil
				}
				return bv(r.History.Family.ShortStatureInFamily)
			},
			Set: func(r *rec, v interface{}) { history(r).Family.ShortStatureInFamily = bp(v) }},
		{Path: "history.family.consanguinityPresent", Label: "Consanguinity",
			Kind: KindBool, Bool: BoolYesNo, Section: SectionHistory,
			Get: func(r *rec) interface{} {
				if r.History == nil {
					return nil
				}
				return bv(r.History.Family.ConsanguinityPresent)
			},
			Set: func(r *rec, v interface{}) { history(r).Family.ConsanguinityPresent = bp(v) }},
		{Path: "history.family.consanguinityDegree", Label: "Consanguinity Degree",
			Kind: KindText, Section: SectionHistory,
			Get: func(r *rec) interface{} {
				if r.History == nil {
					return nil
				}
				return sv(r.History.Family.ConsanguinityDegree)
			},
			Set: func(r *rec, v interface{}) { history(r).Family.ConsanguinityDegree = sp(v) }},
	}

	for i := 0; i < MaxSiblings; i++ {
		idx := i
		n := idx + 1
		fields = append(fields,
			Field{Path: fmt.Sprintf("history.family.siblings.%d.relation", idx), Label: fmt.Sprintf("SiblingRelation_%d", n),
				Kind: KindText, Section: SectionHistory,
				Get: func(r *rec) interface{} {
					s := siblingAt(r, idx)
					if s == nil {
						return nil
					}
					return sv(s.Relation)
				},
				Set: func(r *rec, v interface{}) { sibling(r, idx).Relation = sp(v) }},
			Field{Path: fmt.Sprintf("history.family.siblings.%d.age", idx), Label: fmt.Sprintf("SiblingAge_%d", n),
				Kind: KindInt, Section: SectionHistory,
				Get: func(r *rec) interface{} {
					s := siblingAt(r, idx)
					if s == nil {
						return nil
					}
					return iv(s.Age)
				},
				Set: func(r *rec, v interface{}) { sibling(r, idx).Age = ip(v) }},
			Field{Path: fmt.Sprintf("history.family.siblings.%d.height", idx), Label: fmt.Sprintf("SiblingHeight_%d", n),
				Kind: KindFloat, Section: SectionHistory,
				Get: func(r *rec) interface{} {
					s := siblingAt(r, idx)
					if s == nil {
						return nil
					}
					return fv(s.Height)
				},
				Set: func(r *rec, v interface{}) { sibling(r, idx).Height = fp(v) }},
			Field{Path: fmt.Sprintf("history.family.siblings.%d.weight", idx), Label: fmt.Sprintf("SiblingWeight_%d", n),
				Kind: KindFloat, Section: SectionHistory,
				Get: func(r *rec) interface{} {
					s := siblingAt(r, idx)
					if s == nil {
						return nil
					}
					return fv(s.Weight)
				},
				Set: func(r *rec, v interface{}) { sibling(r, idx).Weight = fp(v) }},
		)
	}

	return fields
}

func examinationFields() []Field {
	type accessor struct {
		path, label, template string
		get                   func(m *models.Measurements) *float64
		set                   func(m *models.Measurements, p *float64)
	}
	measurements := []accessor{
		{"height", "Height", "HtBL",
			func(m *models.Measurements) *float64 { return m.Height },
			func(m *models.Measurements, p *float64) { m.Height = p }},
		{"heightAge", "Height Age", "",
			func(m *models.Measurements) *float64 { return m.HeightAge },
			func(m *models.Measurements, p *float64) { m.HeightAge = p }},
		{"heightSds", "Height SDS", "Ht BL SDS",
			func(m *models.Measurements) *float64 { return m.HeightSDS },
			func(m *models.Measurements, p *float64) { m.HeightSDS = p }},
		{"weight", "Weight", "wt0",
			func(m *models.Measurements) *float64 { return m.Weight },
			func(m *models.Measurements, p *float64) { m.Weight = p }},
		{"weightAge", "Weight Age", "",
			func(m *models.Measurements) *float64 { return m.WeightAge },
			func(m *models.Measurements, p *float64) { m.WeightAge = p }},
		{"weightSds", "Weight SDS", "Wt0 SDS",
			func(m *models.Measurements) *float64 { return m.WeightSDS },
			func(m *models.Measurements, p *float64) { m.WeightSDS = p }},
		{"bmi", "BMI", "bmi0",
			func(m *models.Measurements) *float64 { return m.BMI },
			func(m *models.Measurements, p *float64) { m.BMI = p }},
		{"bmiSds", "BMI SDS", "bmi0 SDS",
			func(m *models.Measurements) *float64 { return m.BMISDS },
			func(m *models.Measurements, p *float64) { m.BMISDS = p }},
	}

	fields := []Field{
		{Path: "examination.date", Label: "Examination Date",
			Kind: KindDate, Section: SectionExamination,
			Get: func(r *rec) interface{} {
				if r.Examination == nil {
					return nil
				}
				return dv(r.Examination.Date)
			},
			Set: func(r *rec, v interface{}) { examination(r).Date = dp(v) }},
	}

	for _, m := range measurements {
		m := m
		fields = append(fields, Field{
			Path: "examination.measurements." + m.path, Label: m.label, Template: m.template,
			Kind: KindFloat, Section: SectionExamination,
			Get: func(r *rec) interface{} {
				if r.Examination == nil {
					return nil
				}
				return fv(m.get(&r.Examination.Measurements))
			},
			Set: func(r *rec, v interface{}) { m.set(&examination(r).Measurements, fp(v)) },
		})
	}

	type strAccessor struct {
		path, label string
		template    string
		get         func(f *models.PhysicalFindings) *string
		set         func(f *models.PhysicalFindings, p *string)
	}
	findings := []strAccessor{
		{"face", "Face", "",
			func(f *models.PhysicalFindings) *string { return f.Face },
			func(f *models.PhysicalFindings, p *string) { f.Face = p }},
		{"thyroid", "Thyroid", "",
			func(f *models.PhysicalFindings) *string { return f.Thyroid },
			func(f *models.PhysicalFindings, p *string) { f.Thyroid = p }},
		{"pubertalStatus", "Pubertal Status", "PUBSTATUS0",
			func(f *models.PhysicalFindings) *string { return f.PubertalStatus },
			func(f *models.PhysicalFindings, p *string) { f.PubertalStatus = p }},
		{"axillaryHair", "Axillary Hair", "",
			func(f *models.PhysicalFindings) *string { return f.AxillaryHair },
			func(f *models.PhysicalFindings, p *string) { f.AxillaryHair = p }},
		{"pubicHair", "Pubic Hair", "",
			func(f *models.PhysicalFindings) *string { return f.PubicHair },
			func(f *models.PhysicalFindings, p *string) { f.PubicHair = p }},
		{"testicularVolume.right", "Testicular Volume Right", "",
			func(f *models.PhysicalFindings) *string { return f.TesticularRight },
			func(f *models.PhysicalFindings, p *string) { f.TesticularRight = p }},
		{"testicularVolume.left", "Testicular Volume Left", "",
			func(f *models.PhysicalFindings) *string { return f.TesticularLeft },
			func(f *models.PhysicalFindings, p *string) { f.TesticularLeft = p }},
		{"breast", "Breast", "",
			func(f *models.PhysicalFindings) *string { return f.Breast },
			func(f *models.PhysicalFindings, p *string) { f.Breast = p }},
		{"spl", "SPL", "",
			func(f *models.PhysicalFindings) *string { return f.SPL },
			func(f *models.PhysicalFindings, p *string) { f.SPL = p }},
	}

	for _, a := range findings {
		a := a
		fields = append(fields, Field{
			Path: "examination.physicalFindings." + a.path, Label: a.label, Template: a.template,
			Kind: KindText, Section: SectionExamination,
			Get: func(r *rec) interface{} {
				if r.Examination == nil {
					return nil
				}
				return sv(a.get(&r.Examination.Findings))
			},
			Set: func(r *rec, v interface{}) { a.set(&examination(r).Findings, sp(v)) },
		})
	}

	return fields
}

func investigationFields() []Field {
	type fAccessor struct {
		path, label string
		get         func(i *models.Investigations) *float64
		set         func(i *models.Investigations, p *float64)
	}
	numerics := []fAccessor{
		{"hematology.hb", "HB",
			func(i *models.Investigations) *float64 { return i.Hematology.HB },
			func(i *models.Investigations, p *float64) { i.Hematology.HB = p }},
		{"hematology.esr", "ESR",
			func(i *models.Investigations) *float64 { return i.Hematology.ESR },
			func(i *models.Investigations, p *float64) { i.Hematology.ESR = p }},
		{"hematology.tlc", "TLC",
			func(i *models.Investigations) *float64 { return i.Hematology.TLC },
			func(i *models.Investigations, p *float64) { i.Hematology.TLC = p }},
		{"hematology.dlc.p", "DLC P",
			func(i *models.Investigations) *float64 { return i.Hematology.DLC.P },
			func(i *models.Investigations, p *float64) { i.Hematology.DLC.P = p }},
		{"hematology.dlc.l", "DLC L",
			func(i *models.Investigations) *float64 { return i.Hematology.DLC.L },
			func(i *models.Investigations, p *float64) { i.Hematology.DLC.L = p }},
		{"hematology.dlc.e", "DLC E",
			func(i *models.Investigations) *float64 { return i.Hematology.DLC.E },
			func(i *models.Investigations, p *float64) { i.Hematology.DLC.E = p }},
		{"hematology.dlc.m", "DLC M",
			func(i *models.Investigations) *float64 { return i.Hematology.DLC.M },
			func(i *models.Investigations, p *float64) { i.Hematology.DLC.M = p }},
		{"hematology.dlc.b", "DLC B",
			func(i *models.Investigations) *float64 { return i.Hematology.DLC.B },
			func(i *models.Investigations, p *float64) { i.Hematology.DLC.B = p }},
		{"biochemistry.sCreat", "S Creat",
			func(i *models.Investigations) *float64 { return i.Biochemistry.SCreat },
			func(i *models.Investigations, p *float64) { i.Biochemistry.SCreat = p }},
		{"biochemistry.sgot", "SGOT",
			func(i *models.Investigations) *float64 { return i.Biochemistry.SGOT },
			func(i *models.Investigations, p *float64) { i.Biochemistry.SGOT = p }},
		{"biochemistry.sgpt", "SGPT",
			func(i *models.Investigations) *float64 { return i.Biochemistry.SGPT },
			func(i *models.Investigations, p *float64) { i.Biochemistry.SGPT = p }},
		{"biochemistry.sAlbumin", "S Albumin",
			func(i *models.Investigations) *float64 { return i.Biochemistry.SAlbumin },
			func(i *models.Investigations, p *float64) { i.Biochemistry.SAlbumin = p }},
		{"biochemistry.sCa", "S Ca",
			func(i *models.Investigations) *float64 { return i.Biochemistry.SCa },
			func(i *models.Investigations, p *float64) { i.Biochemistry.SCa = p }},
		{"biochemistry.sPO4", "S PO4",
			func(i *models.Investigations) *float64 { return i.Biochemistry.SPO4 },
			func(i *models.Investigations, p *float64) { i.Biochemistry.SPO4 = p }},
		{"biochemistry.sap", "SAP",
			func(i *models.Investigations) *float64 { return i.Biochemistry.SAP },
			func(i *models.Investigations, p *float64) { i.Biochemistry.SAP = p }},
		{"biochemistry.sNa", "S Na",
			func(i *models.Investigations) *float64 { return i.Biochemistry.SNa },
			func(i *models.Investigations, p *float64) { i.Biochemistry.SNa = p }},
		{"biochemistry.sK", "S K",
			func(i *models.Investigations) *float64 { return i.Biochemistry.SK },
			func(i *models.Investigations, p *float64) { i.Biochemistry.SK = p }},
		{"biochemistry.fbs", "FBS",
			func(i *models.Investigations) *float64 { return i.Biochemistry.FBS },
			func(i *models.Investigations, p *float64) { i.Biochemistry.FBS = p }},
		{"biochemistry.lipidProfile.tc", "TC",
			func(i *models.Investigations) *float64 { return i.Biochemistry.Lipid.TC },
			func(i *models.Investigations, p *float64) { i.Biochemistry.Lipid.TC = p }},
		{"biochemistry.lipidProfile.tg", "TG",
			func(i *models.Investigations) *float64 { return i.Biochemistry.Lipid.TG },
			func(i *models.Investigations, p *float64) { i.Biochemistry.Lipid.TG = p }},
		{"biochemistry.lipidProfile.ldl", "LDL",
			func(i *models.Investigations) *float64 { return i.Biochemistry.Lipid.LDL },
			func(i *models.Investigations, p *float64) { i.Biochemistry.Lipid.LDL = p }},
		{"biochemistry.lipidProfile.hdl", "HDL",
			func(i *models.Investigations) *float64 { return i.Biochemistry.Lipid.HDL },
			func(i *models.Investigations, p *float64) { i.Biochemistry.Lipid.HDL = p }},
		{"biochemistry.lipidProfile.hba1c", "HBA1C",
			func(i *models.Investigations) *float64 { return i.Biochemistry.Lipid.HBA1C },
			func(i *models.Investigations, p *float64) { i.Biochemistry.Lipid.HBA1C = p }},
	}

	fields := []Field{
		{Path: "investigations.date", Label: "Investigation Date",
			Kind: KindDate, Section: SectionInvestigations,
			Get: func(r *rec) interface{} {
				if r.Investigations == nil {
					return nil
				}
				return dv(r.Investigations.Date)
			},
			Set: func(r *rec, v interface{}) { investigations(r).Date = dp(v) }},
	}

	for _, a := range numerics {
		a := a
		fields = append(fields, Field{
			Path: "investigations." + a.path, Label: a.label,
			Kind: KindFloat, Section: SectionInvestigations,
			Get: func(r *rec) interface{} {
				if r.Investigations == nil {
					return nil
				}
				return fv(a.get(r.Investigations))
			},
			Set: func(r *rec, v interface{}) { a.set(investigations(r), fp(v)) },
		})
	}

	fields = append(fields,
		Field{Path: "investigations.hematology.pbf.cytic", Label: "PBF Cytic",
			Kind: KindText, Section: SectionInvestigations,
			Get: func(r *rec) interface{} {
				if r.Investigations == nil {
					return nil
				}
				return sv(r.Investigations.Hematology.PBFCytic)
			},
			Set: func(r *rec, v interface{}) { investigations(r).Hematology.PBFCytic = sp(v) }},
		Field{Path: "investigations.hematology.pbf.chromic", Label: "PBF Chromic",
			Kind: KindText, Section: SectionInvestigations,
			Get: func(r *rec) interface{} {
				if r.Investigations == nil {
					return nil
				}
				return sv(r.Investigations.Hematology.PBFChromic)
			},
			Set: func(r *rec, v interface{}) { investigations(r).Hematology.PBFChromic = sp(v) }},
		Field{Path: "investigations.urine.lowestPh", Label: "Urine Lowest PH",
			Kind: KindFloat, Section: SectionInvestigations,
			Get: func(r *rec) interface{} {
				if r.Investigations == nil {
					return nil
				}
				return fv(r.Investigations.Urine.LowestPH)
			},
			Set: func(r *rec, v interface{}) { investigations(r).Urine.LowestPH = fp(v) }},
		Field{Path: "investigations.urine.albumin", Label: "Urine Albumin",
			Kind: KindBool, Bool: BoolYesNo, Section: SectionInvestigations,
			Get: func(r *rec) interface{} {
				if r.Investigations == nil {
					return nil
				}
				return bv(r.Investigations.Urine.Albumin)
			},
			Set: func(r *rec, v interface{}) { investigations(r).Urine.Albumin = bp(v) }},
		Field{Path: "investigations.urine.glucose", Label: "Urine Glucose",
			Kind: KindBool, Bool: BoolYesNo, Section: SectionInvestigations,
			Get: func(r *rec) interface{} {
				if r.Investigations == nil {
					return nil
				}
				return bv(r.Investigations.Urine.Glucose)
			},
			Set: func(r *rec, v interface{}) { investigations(r).Urine.Glucose = bp(v) }},
		Field{Path: "investigations.urine.microscopy", Label: "Urine Microscopy",
			Kind: KindText, Section: SectionInvestigations,
			Get: func(r *rec) interface{} {
				if r.Investigations == nil {
					return nil
				}
				return sv(r.Investigations.Urine.Microscopy)
			},
			Set: func(r *rec, v interface{}) { investigations(r).Urine.Microscopy = sp(v) }},
		Field{Path: "investigations.sttg.value", Label: "STTG Value",
			Kind: KindText, Section: SectionInvestigations,
			Get: func(r *rec) interface{} {
				if r.Investigations == nil {
					return nil
				}
				return sv(r.Investigations.STTG.Value)
			},
			Set: func(r *rec, v interface{}) { investigations(r).STTG.Value = sp(v) }},
		Field{Path: "investigations.sttg.place", Label: "STTG Place",
			Kind: KindText, Section: SectionInvestigations,
			Get: func(r *rec) interface{} {
				if r.Investigations == nil {
					return nil
				}
				return sv(r.Investigations.STTG.Place)
			},
			Set: func(r *rec, v interface{}) { investigations(r).STTG.Place = sp(v) }},
		Field{Path: "investigations.imaging.xrayChest", Label: "Xray Chest",
			Kind: KindText, Section: SectionInvestigations,
			Get: func(r *rec) interface{} {
				if r.Investigations == nil {
					return nil
				}
				return sv(r.Investigations.XRayChest)
			},
			Set: func(r *rec, v interface{}) { investigations(r).XRayChest = sp(v) }},
		Field{Path: "investigations.imaging.xraySkull", Label: "Xray Skull",
			Kind: KindText, Section: SectionInvestigations,
			Get: func(r *rec) interface{} {
				if r.Investigations == nil {
					return nil
				}
				return sv(r.Investigations.XRaySkull)
			},
			Set: func(r *rec, v interface{}) { investigations(r).XRaySkull = sp(v) }},
		Field{Path: "investigations.imaging.boneAge.date", Label: "Bone Age Date",
			Kind: KindDate, Section: SectionInvestigations,
			Get: func(r *rec) interface{} {
				if r.Investigations == nil {
					return nil
				}
				return dv(r.Investigations.BoneAge.Date)
			},
			Set: func(r *rec, v interface{}) { investigations(r).BoneAge.Date = dp(v) }},
		Field{Path: "investigations.imaging.boneAge.value", Label: "Bone Age Value", Template: "BA8",
			Kind: KindText, Section: SectionInvestigations,
			Get: func(r *rec) interface{} {
				if r.Investigations == nil {
					return nil
				}
				return sv(r.Investigations.BoneAge.Value)
			},
			Set: func(r *rec, v interface{}) { investigations(r).BoneAge.Value = sp(v) }},
		Field{Path: "investigations.imaging.boneAge.gpScoring", Label: "GP Scoring",
			Kind: KindBool, Bool: BoolYesNo, Section: SectionInvestigations,
			Get: func(r *rec) interface{} {
				if r.Investigations == nil {
					return nil
				}
				return bv(r.Investigations.BoneAge.GPScoring)
			},
			Set: func(r *rec, v interface{}) { investigations(r).BoneAge.GPScoring = bp(v) }},
	)

	return fields
}

func endocrineFields() []Field {
	type fAccessor struct {
		path, label string
		get         func(p *models.HormonePanel) *float64
		set         func(p *models.HormonePanel, f *float64)
	}
	panel := []fAccessor{
		{"t4", "T4",
			func(p *models.HormonePanel) *float64 { return p.T4 },
			func(p *models.HormonePanel, f *float64) { p.T4 = f }},
		{"freeT4", "Free T4",
			func(p *models.HormonePanel) *float64 { return p.FreeT4 },
			func(p *models.HormonePanel, f *float64) { p.FreeT4 = f }},
		{"tsh", "TSH",
			func(p *models.HormonePanel) *float64 { return p.TSH },
			func(p *models.HormonePanel, f *float64) { p.TSH = f }},
		{"lh", "LH",
			func(p *models.HormonePanel) *float64 { return p.LH },
			func(p *models.HormonePanel, f *float64) { p.LH = f }},
		{"fsh", "FSH",
			func(p *models.HormonePanel) *float64 { return p.FSH },
			func(p *models.HormonePanel, f *float64) { p.FSH = f }},
		{"prl", "PRL",
			func(p *models.HormonePanel) *float64 { return p.PRL },
			func(p *models.HormonePanel, f *float64) { p.PRL = f }},
		{"acth", "ACTH",
			func(p *models.HormonePanel) *float64 { return p.ACTH },
			func(p *models.HormonePanel, f *float64) { p.ACTH = f }},
		{"cortisol8am", "Cortisol 8AM",
			func(p *models.HormonePanel) *float64 { return p.Cortisol8AM },
			func(p *models.HormonePanel, f *float64) { p.Cortisol8AM = f }},
		{"igf1", "IGF1",
			func(p *models.HormonePanel) *float64 { return p.IGF1 },
			func(p *models.HormonePanel, f *float64) { p.IGF1 = f }},
		{"estradiol", "Estradiol",
			func(p *models.HormonePanel) *float64 { return p.Estradiol },
			func(p *models.HormonePanel, f *float64) { p.Estradiol = f }},
		{"testosterone", "Testosterone",
			func(p *models.HormonePanel) *float64 { return p.Testosterone },
			func(p *models.HormonePanel, f *float64) { p.Testosterone = f }},
	}

	fields := []Field{
		{Path: "endocrineWorkup.date", Label: "Endocrine Date",
			Kind: KindDate, Section: SectionEndocrine,
			Get: func(r *rec) interface{} {
				if r.Endocrine == nil {
					return nil
				}
				return dv(r.Endocrine.Date)
			},
			Set: func(r *rec, v interface{}) { endocrine(r).Date = dp(v) }},
	}

	for _, a := range panel {
		a := a
		fields = append(fields, Field{
			Path: "endocrineWorkup.tests." + a.path, Label: a.label,
			Kind: KindFloat, Section: SectionEndocrine,
			Get: func(r *rec) interface{} {
				if r.Endocrine == nil {
					return nil
				}
				return fv(a.get(&r.Endocrine.Tests))
			},
			Set: func(r *rec, v interface{}) { a.set(&endocrine(r).Tests, fp(v)) },
		})
	}

	fields = append(fields,
		Field{Path: "endocrineWorkup.ghStimulationTest.type", Label: "GH Stimulation Type",
			Kind: KindText, Section: SectionEndocrine,
			Get: func(r *rec) interface{} {
				if r.Endocrine == nil {
					return nil
				}
				return sv(r.Endocrine.GHStimulation.Type)
			},
			Set: func(r *rec, v interface{}) { endocrine(r).GHStimulation.Type = sp(v) }},
		Field{Path: "endocrineWorkup.ghStimulationTest.date", Label: "GH Stimulation Date", Template: "GHST First date",
			Kind: KindDate, Section: SectionEndocrine,
			Get: func(r *rec) interface{} {
				if r.Endocrine == nil {
					return nil
				}
				return dv(r.Endocrine.GHStimulation.Date)
			},
			Set: func(r *rec, v interface{}) { endocrine(r).GHStimulation.Date = dp(v) }},
		Field{Path: "endocrineWorkup.ghStimulationTest.place", Label: "GH Stimulation Place",
			Kind: KindText, Section: SectionEndocrine,
			Get: func(r *rec) interface{} {
				if r.Endocrine == nil {
					return nil
				}
				return sv(r.Endocrine.GHStimulation.Place)
			},
			Set: func(r *rec, v interface{}) { endocrine(r).GHStimulation.Place = sp(v) }},
		Field{Path: "endocrineWorkup.ghStimulationTest.outsidePlace", Label: "Outside Place",
			Kind: KindText, Section: SectionEndocrine,
			Get: func(r *rec) interface{} {
				if r.Endocrine == nil {
					return nil
				}
				return sv(r.Endocrine.GHStimulation.OutsidePlace)
			},
			Set: func(r *rec, v interface{}) { endocrine(r).GHStimulation.OutsidePlace = sp(v) }},
	)

	for i, tp := range ClonidineTimepoints {
		idx := i
		fields = append(fields, Field{
			Path: fmt.Sprintf("endocrineWorkup.ghStimulationTest.clonidine.%d", idx), Label: "GHTestClonidine" + tp,
			Kind: KindFloat, Section: SectionEndocrine,
			Get: func(r *rec) interface{} {
				if r.Endocrine == nil {
					return nil
				}
				return ghSlot(r.Endocrine.GHStimulation.Clonidine, idx)
			},
			Set: func(r *rec, v interface{}) {
				g := endocrine(r)
				g.GHStimulation.Clonidine = setGHSlot(g.GHStimulation.Clonidine, idx, v)
			},
		})
	}

	for i, tp := range GlucagonTimepoints {
		idx := i
		fields = append(fields, Field{
			Path: fmt.Sprintf("endocrineWorkup.ghStimulationTest.glucagon.%d", idx), Label: "GHTestGlucagon" + tp,
			Kind: KindFloat, Section: SectionEndocrine,
			Get: func(r *rec) interface{} {
				if r.Endocrine == nil {
					return nil
				}
				return ghSlot(r.Endocrine.GHStimulation.Glucagon, idx)
			},
			Set: func(r *rec, v interface{}) {
				g := endocrine(r)
				g.GHStimulation.Glucagon = setGHSlot(g.GHStimulation.Glucagon, idx, v)
			},
		})
	}

	fields = append(fields,
		Field{Path: "endocrineWorkup.ghStimulationTest.testsDone", Label: "Tests Done",
			Kind: KindInt, Section: SectionEndocrine,
			Get: func(r *rec) interface{} {
				if r.Endocrine == nil {
					return nil
				}
				return iv(r.Endocrine.GHStimulation.TestsDone)
			},
			Set: func(r *rec, v interface{}) { endocrine(r).GHStimulation.TestsDone = ip(v) }},
		Field{Path: "endocrineWorkup.ghStimulationTest.singleTestType", Label: "Single Test Type",
			Kind: KindText, Section: SectionEndocrine,
			Get: func(r *rec) interface{} {
				if r.Endocrine == nil {
					return nil
				}
				return sv(r.Endocrine.GHStimulation.SingleTestType)
			},
			Set: func(r *rec, v interface{}) { endocrine(r).GHStimulation.SingleTestType = sp(v) }},
		Field{Path: "endocrineWorkup.ghStimulationTest.peakGHLevel", Label: "Peak GH Level",
			Kind: KindText, Section: SectionEndocrine,
			Get: func(r *rec) interface{} {
				if r.Endocrine == nil {
					return nil
				}
				return sv(r.Endocrine.GHStimulation.PeakGHLevel)
			},
			Set: func(r *rec, v interface{}) { endocrine(r).GHStimulation.PeakGHLevel = sp(v) }},
		Field{Path: "endocrineWorkup.ghStimulationTest.exactPeakGH", Label: "Exact Peak GH",
			Kind: KindFloat, Section: SectionEndocrine,
			Get: func(r *rec) interface{} {
				if r.Endocrine == nil {
					return nil
				}
				return fv(r.Endocrine.GHStimulation.ExactPeakGH)
			},
			Set: func(r *rec, v interface{}) { endocrine(r).GHStimulation.ExactPeakGH = fp(v) }},
		Field{Path: "endocrineWorkup.ghStimulationTest.peakGHTime", Label: "Peak GH Time",
			Kind: KindText, Section: SectionEndocrine,
			Get: func(r *rec) interface{} {
				if r.Endocrine == nil {
					return nil
				}
				return sv(r.Endocrine.GHStimulation.PeakGHTime)
			},
			Set: func(r *rec, v interface{}) { endocrine(r).GHStimulation.PeakGHTime = sp(v) }},
	)

	return fields
}

func imagingFields() []Field {
	return []Field{
		{Path: "mri.performed", Label: "MRI Performed", Template: "MRI Yes 1 or no 2",
			Kind: KindBool, Bool: BoolOneTwo, Section: SectionImaging,
			Get: func(r *rec) interface{} {
				if r.Imaging == nil {
					return nil
				}
				return bv(r.Imaging.Performed)
			},
			Set: func(r *rec, v interface{}) { imaging(r).Performed = bp(v) }},
		{Path: "mri.date", Label: "MRI Date",
			Kind: KindDate, Section: SectionImaging,
			Get: func(r *rec) interface{} {
				if r.Imaging == nil {
					return nil
				}
				return dv(r.Imaging.Date)
			},
			Set: func(r *rec, v interface{}) { imaging(r).Date = dp(v) }},
		{Path: "mri.contrastUsed", Label: "MRI Contrast Used",
			Kind: KindBool, Bool: BoolYesNo, Section: SectionImaging,
			Get: func(r *rec) interface{} {
				if r.Imaging == nil {
					return nil
				}
				return bv(r.Imaging.ContrastUsed)
			},
			Set: func(r *rec, v interface{}) { imaging(r).ContrastUsed = bp(v) }},
		{Path: "mri.place", Label: "MRI Place",
			Kind: KindText, Section: SectionImaging,
			Get: func(r *rec) interface{} {
				if r.Imaging == nil {
					return nil
				}
				return sv(r.Imaging.Place)
			},
			Set: func(r *rec, v interface{}) { imaging(r).Place = sp(v) }},
		{Path: "mri.filmsAvailable", Label: "MRI Films Available",
			Kind: KindBool, Bool: BoolYesNo, Section: SectionImaging,
			Get: func(r *rec) interface{} {
				if r.Imaging == nil {
					return nil
				}
				return bv(r.Imaging.FilmsAvailable)
			},
			Set: func(r *rec, v interface{}) { imaging(r).FilmsAvailable = bp(v) }},
		{Path: "mri.cdAvailable", Label: "MRI CD Available",
			Kind: KindBool, Bool: BoolYesNo, Section: SectionImaging,
			Get: func(r *rec) interface{} {
				if r.Imaging == nil {
					return nil
				}
				return bv(r.Imaging.CDAvailable)
			},
			Set: func(r *rec, v interface{}) { imaging(r).CDAvailable = bp(v) }},
		{Path: "mri.scanned", Label: "MRI Scanned",
			Kind: KindBool, Bool: BoolYesNo, Section: SectionImaging,
			Get: func(r *rec) interface{} {
				if r.Imaging == nil {
					return nil
				}
				return bv(r.Imaging.Scanned)
			},
			Set: func(r *rec, v interface{}) { imaging(r).Scanned = bp(v) }},
		{Path: "mri.findings.anteriorPituitaryHypoplasia", Label: "Anterior Pituitary Hypoplasia", Template: "antepit",
			Kind: KindBool, Bool: BoolYesNo, Section: SectionImaging,
			Get: func(r *rec) interface{} {
				if r.Imaging == nil {
					return nil
				}
				return bv(r.Imaging.Findings.AnteriorPituitaryHypoplasia)
			},
			Set: func(r *rec, v interface{}) { imaging(r).Findings.AnteriorPituitaryHypoplasia = bp(v) }},
		{Path: "mri.findings.pituitaryStalkInterruption", Label: "Pituitary Stalk Interruption", Template: "pitstalk",
			Kind: KindBool, Bool: BoolYesNo, Section: SectionImaging,
			Get: func(r *rec) interface{} {
				if r.Imaging == nil {
					return nil
				}
				return bv(r.Imaging.Findings.StalkInterruption)
			},
			Set: func(r *rec, v interface{}) { imaging(r).Findings.StalkInterruption = bp(v) }},
		{Path: "mri.findings.ectopicPosteriorPituitary", Label: "Ectopic Posterior Pituitary", Template: "ectoposte",
			Kind: KindBool, Bool: BoolYesNo, Section: SectionImaging,
			Get: func(r *rec) interface{} {
				if r.Imaging == nil {
					return nil
				}
				return bv(r.Imaging.Findings.EctopicPosteriorPituitary)
			},
			Set: func(r *rec, v interface{}) { imaging(r).Findings.EctopicPosteriorPituitary = bp(v) }},
		{Path: "mri.findings.pituitarySizeMM", Label: "Pituitary Size MM",
			Kind: KindFloat, Section: SectionImaging,
			Get: func(r *rec) interface{} {
				if r.Imaging == nil {
					return nil
				}
				return fv(r.Imaging.Findings.PituitarySizeMM)
			},
			Set: func(r *rec, v interface{}) { imaging(r).Findings.PituitarySizeMM = fp(v) }},
		{Path: "mri.findings.otherFindings", Label: "Other MRI Findings", Template: "MRIfindings",
			Kind: KindText, Section: SectionImaging,
			Get: func(r *rec) interface{} {
				if r.Imaging == nil {
					return nil
				}
				return sv(r.Imaging.Findings.Other)
			},
			Set: func(r *rec, v interface{}) { imaging(r).Findings.Other = sp(v) }},
	}
}

func treatmentFields() []Field {
	return []Field{
		{Path: "treatment.hypothyroidism.present", Label: "Hypothyroidism Present", Template: "PreGH-Hypothyroidism Y 1 N 2",
			Kind: KindBool, Bool: BoolOneTwo, Section: SectionTreatment,
			Get: func(r *rec) interface{} {
				if r.Treatment == nil {
					return nil
				}
				return bv(r.Treatment.Hypothyroidism.Present)
			},
			Set: func(r *rec, v interface{}) { treatment(r).Hypothyroidism.Present = bp(v) }},
		{Path: "treatment.hypothyroidism.diagnosisDate", Label: "Hypothyroidism Diagnosis Date",
			Kind: KindDate, Section: SectionTreatment,
			Get: func(r *rec) interface{} {
				if r.Treatment == nil {
					return nil
				}
				return dv(r.Treatment.Hypothyroidism.DiagnosisDate)
			},
			Set: func(r *rec, v interface{}) { treatment(r).Hypothyroidism.DiagnosisDate = dp(v) }},
		{Path: "treatment.hypothyroidism.treatmentStartDate", Label: "Hypothyroidism Treatment Start Date", Template: "Start Date Thyronorm",
			Kind: KindDate, Section: SectionTreatment,
			Get: func(r *rec) interface{} {
				if r.Treatment == nil {
					return nil
				}
				return dv(r.Treatment.Hypothyroidism.StartDate)
			},
			Set: func(r *rec, v interface{}) { treatment(r).Hypothyroidism.StartDate = dp(v) }},
		{Path: "treatment.hypothyroidism.currentDose", Label: "Hypothyroidism Current Dose",
			Kind: KindText, Section: SectionTreatment,
			Get: func(r *rec) interface{} {
				if r.Treatment == nil {
					return nil
				}
				return sv(r.Treatment.Hypothyroidism.CurrentDose)
			},
			Set: func(r *rec, v interface{}) { treatment(r).Hypothyroidism.CurrentDose = sp(v) }},
		{Path: "treatment.hypothyroidism.doseChanged", Label: "Hypothyroidism Dose Changed",
			Kind: KindBool, Bool: BoolYesNo, Section: SectionTreatment,
			Get: func(r *rec) interface{} {
				if r.Treatment == nil {
					return nil
				}
				return bv(r.Treatment.Hypothyroidism.DoseChanged)
			},
			Set: func(r *rec, v interface{}) { treatment(r).Hypothyroidism.DoseChanged = bp(v) }},
		{Path: "treatment.hypothyroidism.lastT4", Label: "Hypothyroidism Last T4",
			Kind: KindFloat, Section: SectionTreatment,
			Get: func(r *rec) interface{} {
				if r.Treatment == nil {
					return nil
				}
				return fv(r.Treatment.Hypothyroidism.LastT4)
			},
			Set: func(r *rec, v interface{}) { treatment(r).Hypothyroidism.LastT4 = fp(v) }},
		{Path: "treatment.hypothyroidism.source", Label: "Hypothyroidism Source",
			Kind: KindText, Section: SectionTreatment,
			Get: func(r *rec) interface{} {
				if r.Treatment == nil {
					return nil
				}
				return sv(r.Treatment.Hypothyroidism.Source)
			},
			Set: func(r *rec, v interface{}) { treatment(r).Hypothyroidism.Source = sp(v) }},

		{Path: "treatment.hypocortisolism.present", Label: "Hypocortisolism Present", Template: "PreGH-Hypocort Y 1 N 2",
			Kind: KindBool, Bool: BoolOneTwo, Section: SectionTreatment,
			Get: func(r *rec) interface{} {
				if r.Treatment == nil {
					return nil
				}
				return bv(r.Treatment.Hypocortisolism.Present)
			},
			Set: func(r *rec, v interface{}) { treatment(r).Hypocortisolism.Present = bp(v) }},
		{Path: "treatment.hypocortisolism.diagnosisDate", Label: "Hypocortisolism Diagnosis Date",
			Kind: KindDate, Section: SectionTreatment,
			Get: func(r *rec) interface{} {
				if r.Treatment == nil {
					return nil
				}
				return dv(r.Treatment.Hypocortisolism.DiagnosisDate)
			},
			Set: func(r *rec, v interface{}) { treatment(r).Hypocortisolism.DiagnosisDate = dp(v) }},
		{Path: "treatment.hypocortisolism.acthStimTest", Label: "ACTH Stim Test",
			Kind: KindBool, Bool: BoolYesNo, Section: SectionTreatment,
			Get: func(r *rec) interface{} {
				if r.Treatment == nil {
					return nil
				}
				return bv(r.Treatment.Hypocortisolism.ACTHStimTest)
			},
			Set: func(r *rec, v interface{}) { treatment(r).Hypocortisolism.ACTHStimTest = bp(v) }},
		{Path: "treatment.hypocortisolism.testDate", Label: "ACTH Test Date",
			Kind: KindDate, Section: SectionTreatment,
			Get: func(r *rec) interface{} {
				if r.Treatment == nil {
					return nil
				}
				return dv(r.Treatment.Hypocortisolism.TestDate)
			},
			Set: func(r *rec, v interface{}) { treatment(r).Hypocortisolism.TestDate = dp(v) }},
		{Path: "treatment.hypocortisolism.peakCortisol", Label: "Peak Cortisol",
			Kind: KindFloat, Section: SectionTreatment,
			Get: func(r *rec) interface{} {
				if r.Treatment == nil {
					return nil
				}
				return fv(r.Treatment.Hypocortisolism.PeakCortisol)
			},
			Set: func(r *rec, v interface{}) { treatment(r).Hypocortisolism.PeakCortisol = fp(v) }},
		{Path: "treatment.hypocortisolism.treatmentStartDate", Label: "Hypocortisolism Treatment Start Date", Template: "StartDate-Steroid",
			Kind: KindDate, Section: SectionTreatment,
			Get: func(r *rec) interface{} {
				if r.Treatment == nil {
					return nil
				}
				return dv(r.Treatment.Hypocortisolism.StartDate)
			},
			Set: func(r *rec, v interface{}) { treatment(r).Hypocortisolism.StartDate = dp(v) }},
		{Path: "treatment.hypocortisolism.steroidType", Label: "Steroid Type",
			Kind: KindText, Section: SectionTreatment,
			Get: func(r *rec) interface{} {
				if r.Treatment == nil {
					return nil
				}
				return sv(r.Treatment.Hypocortisolism.SteroidType)
			},
			Set: func(r *rec, v interface{}) { treatment(r).Hypocortisolism.SteroidType = sp(v) }},
		{Path: "treatment.hypocortisolism.currentDose", Label: "Hypocortisolism Current Dose",
			Kind: KindText, Section: SectionTreatment,
			Get: func(r *rec) interface{} {
				if r.Treatment == nil {
					return nil
				}
				return sv(r.Treatment.Hypocortisolism.CurrentDose)
			},
			Set: func(r *rec, v interface{}) { treatment(r).Hypocortisolism.CurrentDose = sp(v) }},
		{Path: "treatment.hypocortisolism.frequency", Label: "Hypocortisolism Frequency",
			Kind: KindText, Section: SectionTreatment,
			Get: func(r *rec) interface{} {
				if r.Treatment == nil {
					return nil
				}
				return sv(r.Treatment.Hypocortisolism.Frequency)
			},
			Set: func(r *rec, v interface{}) { treatment(r).Hypocortisolism.Frequency = sp(v) }},
		{Path: "treatment.hypocortisolism.dailyDoseMG", Label: "Daily Dose MG",
			Kind: KindFloat, Section: SectionTreatment,
			Get: func(r *rec) interface{} {
				if r.Treatment == nil {
					return nil
				}
				return fv(r.Treatment.Hypocortisolism.DailyDoseMG)
			},
			Set: func(r *rec, v interface{}) { treatment(r).Hypocortisolism.DailyDoseMG = fp(v) }},
		{Path: "treatment.hypocortisolism.doseChanged", Label: "Hypocortisolism Dose Changed",
			Kind: KindBool, Bool: BoolYesNo, Section: SectionTreatment,
			Get: func(r *rec) interface{} {
				if r.Treatment == nil {
					return nil
				}
				return bv(r.Treatment.Hypocortisolism.DoseChanged)
			},
			Set: func(r *rec, v interface{}) { treatment(r).Hypocortisolism.DoseChanged = bp(v) }},
		{Path: "treatment.hypocortisolism.source", Label: "Hypocortisolism Source",
			Kind: KindText, Section: SectionTreatment,
			Get: func(r *rec) interface{} {
				if r.Treatment == nil {
					return nil
				}
				return sv(r.Treatment.Hypocortisolism.Source)
			},
			Set: func(r *rec, v interface{}) { treatment(r).Hypocortisolism.Source = sp(v) }},

		{Path: "treatment.di.present", Label: "DI Present", Template: "PreGH-DI Y 1 N 2",
			Kind: KindBool, Bool: BoolOneTwo, Section: SectionTreatment,
			Get: func(r *rec) interface{} {
				if r.Treatment == nil {
					return nil
				}
				return bv(r.Treatment.DiabetesInsipidus.Present)
			},
			Set: func(r *rec, v interface{}) { treatment(r).DiabetesInsipidus.Present = bp(v) }},
		{Path: "treatment.di.diagnosisDate", Label: "DI Diagnosis Date",
			Kind: KindDate, Section: SectionTreatment,
			Get: func(r *rec) interface{} {
				if r.Treatment == nil {
					return nil
				}
				return dv(r.Treatment.DiabetesInsipidus.DiagnosisDate)
			},
			Set: func(r *rec, v interface{}) { treatment(r).DiabetesInsipidus.DiagnosisDate = dp(v) }},
		{Path: "treatment.di.minirin", Label: "Minirin", Template: "Pre-GH Minirin Y 1 N 2",
			Kind: KindBool, Bool: BoolOneTwo, Section: SectionTreatment,
			Get: func(r *rec) interface{} {
				if r.Treatment == nil {
					return nil
				}
				return bv(r.Treatment.DiabetesInsipidus.Minirin)
			},
			Set: func(r *rec, v interface{}) { treatment(r).DiabetesInsipidus.Minirin = bp(v) }},
		{Path: "treatment.di.dose", Label: "DI Dose",
			Kind: KindText, Section: SectionTreatment,
			Get: func(r *rec) interface{} {
				if r.Treatment == nil {
					return nil
				}
				return sv(r.Treatment.DiabetesInsipidus.Dose)
			},
			Set: func(r *rec, v interface{}) { treatment(r).DiabetesInsipidus.Dose = sp(v) }},
		{Path: "treatment.di.frequency", Label: "DI Frequency",
			Kind: KindInt, Section: SectionTreatment,
			Get: func(r *rec) interface{} {
				if r.Treatment == nil {
					return nil
				}
				return iv(r.Treatment.DiabetesInsipidus.Frequency)
			},
			Set: func(r *rec, v interface{}) { treatment(r).DiabetesInsipidus.Frequency = ip(v) }},

		{Path: "treatment.hypogonadism.present", Label: "Hypogonadism Present", Template: "PreGH-Hypogonadism Y 1 N 2",
			Kind: KindBool, Bool: BoolOneTwo, Section: SectionTreatment,
			Get: func(r *rec) interface{} {
				if r.Treatment == nil {
					return nil
				}
				return bv(r.Treatment.Hypogonadism.Present)
			},
			Set: func(r *rec, v interface{}) { treatment(r).Hypogonadism.Present = bp(v) }},
		{Path: "treatment.hypogonadism.diagnosisDate", Label: "Hypogonadism Diagnosis Date",
			Kind: KindDate, Section: SectionTreatment,
			Get: func(r *rec) interface{} {
				if r.Treatment == nil {
					return nil
				}
				return dv(r.Treatment.Hypogonadism.DiagnosisDate)
			},
			Set: func(r *rec, v interface{}) { treatment(r).Hypogonadism.DiagnosisDate = dp(v) }},
		{Path: "treatment.hypogonadism.treatmentStartDate", Label: "Hypogonadism Treatment Start Date", Template: "StartDate-Hypogonadism",
			Kind: KindDate, Section: SectionTreatment,
			Get: func(r *rec) interface{} {
				if r.Treatment == nil {
					return nil
				}
				return dv(r.Treatment.Hypogonadism.StartDate)
			},
			Set: func(r *rec, v interface{}) { treatment(r).Hypogonadism.StartDate = dp(v) }},
		{Path: "treatment.hypogonadism.fullAdultDoseDate", Label: "Full Adult Dose Date",
			Kind: KindDate, Section: SectionTreatment,
			Get: func(r *rec) interface{} {
				if r.Treatment == nil {
					return nil
				}
				return dv(r.Treatment.Hypogonadism.FullAdultDoseDate)
			},
			Set: func(r *rec, v interface{}) { treatment(r).Hypogonadism.FullAdultDoseDate = dp(v) }},
		{Path: "treatment.hypogonadism.hormoneType", Label: "Hormone Type",
			Kind: KindText, Section: SectionTreatment,
			Get: func(r *rec) interface{} {
				if r.Treatment == nil {
					return nil
				}
				return sv(r.Treatment.Hypogonadism.HormoneType)
			},
			Set: func(r *rec, v interface{}) { treatment(r).Hypogonadism.HormoneType = sp(v) }},
		{Path: "treatment.hypogonadism.mpaStartDate", Label: "MPA Start Date",
			Kind: KindDate, Section: SectionTreatment,
			Get: func(r *rec) interface{} {
				if r.Treatment == nil {
					return nil
				}
				return dv(r.Treatment.Hypogonadism.MPAStartDate)
			},
			Set: func(r *rec, v interface{}) { treatment(r).Hypogonadism.MPAStartDate = dp(v) }},
		{Path: "treatment.hypogonadism.currentDose", Label: "Hypogonadism Current Dose",
			Kind: KindText, Section: SectionTreatment,
			Get: func(r *rec) interface{} {
				if r.Treatment == nil {
					return nil
				}
				return sv(r.Treatment.Hypogonadism.CurrentDose)
			},
			Set: func(r *rec, v interface{}) { treatment(r).Hypogonadism.CurrentDose = sp(v) }},
		{Path: "treatment.hypogonadism.doseChanged", Label: "Hypogonadism Dose Changed",
			Kind: KindBool, Bool: BoolYesNo, Section: SectionTreatment,
			Get: func(r *rec) interface{} {
				if r.Treatment == nil {
					return nil
				}
				return bv(r.Treatment.Hypogonadism.DoseChanged)
			},
			Set: func(r *rec, v interface{}) { treatment(r).Hypogonadism.DoseChanged = bp(v) }},

		{Path: "treatment.supplements.calcium", Label: "Calcium Supplement",
			Kind: KindBool, Bool: BoolYesNo, Section: SectionTreatment,
			Get: func(r *rec) interface{} {
				if r.Treatment == nil {
					return nil
				}
				return bv(r.Treatment.Supplements.Calcium)
			},
			Set: func(r *rec, v interface{}) { treatment(r).Supplements.Calcium = bp(v) }},
		{Path: "treatment.supplements.vitaminD", Label: "Vitamin D Supplement",
			Kind: KindBool, Bool: BoolYesNo, Section: SectionTreatment,
			Get: func(r *rec) interface{} {
				if r.Treatment == nil {
					return nil
				}
				return bv(r.Treatment.Supplements.VitaminD)
			},
			Set: func(r *rec, v interface{}) { treatment(r).Supplements.VitaminD = bp(v) }},
		{Path: "treatment.supplements.iron", Label: "Iron Supplement",
			Kind: KindBool, Bool: BoolYesNo, Section: SectionTreatment,
			Get: func(r *rec) interface{} {
				if r.Treatment == nil {
					return nil
				}
				return bv(r.Treatment.Supplements.Iron)
			},
			Set: func(r *rec, v interface{}) { treatment(r).Supplements.Iron = bp(v) }},
		{Path: "treatment.otherTreatments.antiepileptics", Label: "Antiepileptics",
			Kind: KindBool, Bool: BoolYesNo, Section: SectionTreatment,
			Get: func(r *rec) interface{} {
				if r.Treatment == nil {
					return nil
				}
				return bv(r.Treatment.Other.Antiepileptics)
			},
			Set: func(r *rec, v interface{}) { treatment(r).Other.Antiepileptics = bp(v) }},
		{Path: "treatment.otherTreatments.otherDrugs", Label: "Other Drugs",
			Kind: KindText, Section: SectionTreatment,
			Get: func(r *rec) interface{} {
				if r.Treatment == nil {
					return nil
				}
				return sv(r.Treatment.Other.OtherDrugs)
			},
			Set: func(r *rec, v interface{}) { treatment(r).Other.OtherDrugs = sp(v) }},
	}
}

func diagnosisFields() []Field {
	return []Field{
		{Path: "diagnosis.diagnosisType", Label: "Diagnosis Type",
			Kind: KindText, Section: SectionDiagnosis,
			Get: func(r *rec) interface{} {
				if r.Diagnosis == nil {
					return nil
				}
				return sv(r.Diagnosis.Type)
			},
			Set: func(r *rec, v interface{}) { diagnosis(r).Type = sp(v) }},
		{Path: "diagnosis.isolatedGHD", Label: "Isolated GHD",
			Kind: KindBool, Bool: BoolYesNo, Section: SectionDiagnosis,
			Get: func(r *rec) interface{} {
				if r.Diagnosis == nil {
					return nil
				}
				return bv(r.Diagnosis.IsolatedGHD)
			},
			Set: func(r *rec, v interface{}) { diagnosis(r).IsolatedGHD = bp(v) }},
		{Path: "diagnosis.hypopituitarism", Label: "Hypopituitarism",
			Kind: KindBool, Bool: BoolYesNo, Section: SectionDiagnosis,
			Get: func(r *rec) interface{} {
				if r.Diagnosis == nil {
					return nil
				}
				return bv(r.Diagnosis.Hypopituitarism)
			},
			Set: func(r *rec, v interface{}) { diagnosis(r).Hypopituitarism = bp(v) }},
		{Path: "diagnosis.affectedAxes.thyroid", Label: "Affected Axes Thyroid",
			Kind: KindBool, Bool: BoolYesNo, Section: SectionDiagnosis,
			Get: func(r *rec) interface{} {
				if r.Diagnosis == nil {
					return nil
				}
				return bv(r.Diagnosis.Axes.Thyroid)
			},
			Set: func(r *rec, v interface{}) { diagnosis(r).Axes.Thyroid = bp(v) }},
		{Path: "diagnosis.affectedAxes.cortisol", Label: "Affected Axes Cortisol",
			Kind: KindBool, Bool: BoolYesNo, Section: SectionDiagnosis,
			Get: func(r *rec) interface{} {
				if r.Diagnosis == nil {
					return nil
				}
				return bv(r.Diagnosis.Axes.Cortisol)
			},
			Set: func(r *rec, v interface{}) { diagnosis(r).Axes.Cortisol = bp(v) }},
		{Path: "diagnosis.affectedAxes.gonadal", Label: "Affected Axes Gonadal",
			Kind: KindBool, Bool: BoolYesNo, Section: SectionDiagnosis,
			Get: func(r *rec) interface{} {
				if r.Diagnosis == nil {
					return nil
				}
				return bv(r.Diagnosis.Axes.Gonadal)
			},
			Set: func(r *rec, v interface{}) { diagnosis(r).Axes.Gonadal = bp(v) }},
		{Path: "diagnosis.affectedAxes.di", Label: "Affected Axes DI",
			Kind: KindBool, Bool: BoolYesNo, Section: SectionDiagnosis,
			Get: func(r *rec) interface{} {
				if r.Diagnosis == nil {
					return nil
				}
				return bv(r.Diagnosis.Axes.DI)
			},
			Set: func(r *rec, v interface{}) { diagnosis(r).Axes.DI = bp(v) }},
		{Path: "diagnosis.mriAbnormality", Label: "MRI Abnormality",
			Kind: KindBool, Bool: BoolYesNo, Section: SectionDiagnosis,
			Get: func(r *rec) interface{} {
				if r.Diagnosis == nil {
					return nil
				}
				return bv(r.Diagnosis.MRIAbnormality)
			},
			Set: func(r *rec, v interface{}) { diagnosis(r).MRIAbnormality = bp(v) }},
	}
}

func remarksFields() []Field {
	return []Field{
		{Path: "remarks.text", Label: "Remarks",
			Kind: KindText, Section: SectionRemarks,
			Get: func(r *rec) interface{} {
				if r.Remarks == nil {
					return nil
				}
				return sv(r.Remarks.Text)
			},
			Set: func(r *rec, v interface{}) { remarks(r).Text = sp(v) }},
	}
}
