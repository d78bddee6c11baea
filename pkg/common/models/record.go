package models

import (
	"time"

	"github.com/google/uuid"
)

// Record is the nested patient document held by the registry. The PAEC number
// is the natural key: it is how spreadsheet rows are matched back to records,
// and it is unique among records that have not been soft-deleted. The internal
// ID exists only for storage and never appears on a sheet.
//
// Every mutable section below Identity carries a Present flag set when a
// clinician (or an import row) touched the section at all. Present is distinct
// from "all fields empty": a section can be explicitly addressed and still hold
// no values.
type Record struct {
	ID uuid.UUID `json:"id"`

	Identity       Identity         `json:"identity"`
	History        *History         `json:"history,omitempty"`
	Examination    *Examination     `json:"examination,omitempty"`
	Investigations *Investigations  `json:"investigations,omitempty"`
	Endocrine      *EndocrineWorkup `json:"endocrine,omitempty"`
	Imaging        *MRIStudy        `json:"imaging,omitempty"`
	Treatment      *Treatment       `json:"treatment,omitempty"`
	Diagnosis      *Diagnosis       `json:"diagnosis,omitempty"`
	Remarks        *Remarks         `json:"remarks,omitempty"`

	VisitDate *time.Time `json:"visit_date,omitempty"`

	CenterID  string        `json:"center_id,omitempty"`
	CreatedBy string        `json:"created_by,omitempty"`
	UpdatedBy []UpdateStamp `json:"updated_by,omitempty"`
	Deleted   Deletion      `json:"deleted"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateStamp is one entry in the record's mutation history. One stamp is
// appended per update, even when the update changed nothing.
type UpdateStamp struct {
	Actor     string    `json:"actor"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Deletion is the soft-delete marker. Records are never physically removed.
type Deletion struct {
	Status    bool       `json:"status"`
	DeletedBy string     `json:"deleted_by,omitempty"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

type Identity struct {
	PaecNo  string     `json:"paec_no"`
	UHID    *string    `json:"uhid,omitempty"`
	Name    *string    `json:"name,omitempty"`
	DOB     *time.Time `json:"dob,omitempty"`
	Age     *int       `json:"age,omitempty"`
	Sex     *string    `json:"sex,omitempty"`
	Address Address    `json:"address"`
	Contact Contact    `json:"contact"`
}

type Address struct {
	Street *string `json:"street,omitempty"`
	City   *string `json:"city,omitempty"`
	State  *string `json:"state,omitempty"`
}

type Contact struct {
	Cell1    *string `json:"cell1,omitempty"`
	Cell2    *string `json:"cell2,omitempty"`
	Landline *string `json:"landline,omitempty"`
}

type History struct {
	Present               bool          `json:"present"`
	ShortStatureNoticedAt *string       `json:"short_stature_noticed_at,omitempty"`
	Birth                 BirthHistory  `json:"birth"`
	Puberty               PubertyOnset  `json:"puberty"`
	Family                FamilyHistory `json:"family"`
}

type BirthHistory struct {
	Duration       *string  `json:"duration,omitempty"`        // fullterm, preterm, post term
	DeliveryPlace  *string  `json:"delivery_place,omitempty"`  // home, nursing home, govt hospital
	DeliveryNature *string  `json:"delivery_nature,omitempty"` // normal, breech, forceps, LSCS
	Weight         *float64 `json:"weight,omitempty"`
	Length         *float64 `json:"length,omitempty"`
	Hypoxia        *bool    `json:"hypoxia,omitempty"`
}

type PubertyOnset struct {
	ThelarcheAgeYears *float64 `json:"thelarche_age_years,omitempty"`
	MenarcheAgeYears  *float64 `json:"menarche_age_years,omitempty"`
}

type FamilyHistory struct {
	FatherAge            *int      `json:"father_age,omitempty"`
	FatherHeight         *float64  `json:"father_height,omitempty"`
	MotherAge            *int      `json:"mother_age,omitempty"`
	MotherHeight         *float64  `json:"mother_height,omitempty"`
	MPH                  *float64  `json:"mph,omitempty"`
	MPHSDS               *float64  `json:"mph_sds,omitempty"`
	ShortStatureInFamily *bool     `json:"short_stature_in_family,omitempty"`
	ConsanguinityPresent *bool     `json:"consanguinity_present,omitempty"`
	ConsanguinityDegree  *string   `json:"consanguinity_degree,omitempty"` // 1, 2, 3, others
	Siblings             []Sibling `json:"siblings,omitempty"`
}

type Sibling struct {
	Relation *string  `json:"relation,omitempty"`
	Age      *int     `json:"age,omitempty"`
	Height   *float64 `json:"height,omitempty"`
	Weight   *float64 `json:"weight,omitempty"`
}

type Examination struct {
	Present      bool             `json:"present"`
	Date         *time.Time       `json:"date,omitempty"`
	Measurements Measurements     `json:"measurements"`
	Findings     PhysicalFindings `json:"findings"`
}

type Measurements struct {
	Height    *float64 `json:"height,omitempty"`
	HeightAge *float64 `json:"height_age,omitempty"`
	HeightSDS *float64 `json:"height_sds,omitempty"`
	Weight    *float64 `json:"weight,omitempty"`
	WeightAge *float64 `json:"weight_age,omitempty"`
	WeightSDS *float64 `json:"weight_sds,omitempty"`
	BMI       *float64 `json:"bmi,omitempty"`
	BMISDS    *float64 `json:"bmi_sds,omitempty"`
}

type PhysicalFindings struct {
	Face            *string `json:"face,omitempty"`
	Thyroid         *string `json:"thyroid,omitempty"`
	PubertalStatus  *string `json:"pubertal_status,omitempty"` // Prepubertal, Peri-pubertal, Pubertal
	AxillaryHair    *string `json:"axillary_hair,omitempty"`
	PubicHair       *string `json:"pubic_hair,omitempty"` // Tanner I..V
	TesticularRight *string `json:"testicular_right,omitempty"`
	TesticularLeft  *string `json:"testicular_left,omitempty"`
	Breast          *string `json:"breast,omitempty"`
	SPL             *string `json:"spl,omitempty"`
}

type Investigations struct {
	Present      bool         `json:"present"`
	Date         *time.Time   `json:"date,omitempty"`
	Hematology   Hematology   `json:"hematology"`
	Biochemistry Biochemistry `json:"biochemistry"`
	Urine        Urinalysis   `json:"urine"`
	STTG         STTG         `json:"sttg"`
	XRayChest    *string      `json:"xray_chest,omitempty"`
	XRaySkull    *string      `json:"xray_skull,omitempty"`
	BoneAge      BoneAge      `json:"bone_age"`
}

type Hematology struct {
	HB         *float64          `json:"hb,omitempty"`
	ESR        *float64          `json:"esr,omitempty"`
	TLC        *float64          `json:"tlc,omitempty"`
	DLC        DifferentialCount `json:"dlc"`
	PBFCytic   *string           `json:"pbf_cytic,omitempty"`   // normo, hypo, megaloblastic
	PBFChromic *string           `json:"pbf_chromic,omitempty"` // normo, hypochromic
}

type DifferentialCount struct {
	P *float64 `json:"p,omitempty"`
	L *float64 `json:"l,omitempty"`
	E *float64 `json:"e,omitempty"`
	M *float64 `json:"m,omitempty"`
	B *float64 `json:"b,omitempty"`
}

type Biochemistry struct {
	SCreat   *float64     `json:"s_creat,omitempty"`
	SGOT     *float64     `json:"sgot,omitempty"`
	SGPT     *float64     `json:"sgpt,omitempty"`
	SAlbumin *float64     `json:"s_albumin,omitempty"`
	SCa      *float64     `json:"s_ca,omitempty"`
	SPO4     *float64     `json:"s_po4,omitempty"`
	SAP      *float64     `json:"sap,omitempty"`
	SNa      *float64     `json:"s_na,omitempty"`
	SK       *float64     `json:"s_k,omitempty"`
	FBS      *float64     `json:"fbs,omitempty"`
	Lipid    LipidProfile `json:"lipid"`
}

type LipidProfile struct {
	TC    *float64 `json:"tc,omitempty"`
	TG    *float64 `json:"tg,omitempty"`
	LDL   *float64 `json:"ldl,omitempty"`
	HDL   *float64 `json:"hdl,omitempty"`
	HBA1C *float64 `json:"hba1c,omitempty"`
}

type Urinalysis struct {
	LowestPH   *float64 `json:"lowest_ph,omitempty"`
	Albumin    *bool    `json:"albumin,omitempty"`
	Glucose    *bool    `json:"glucose,omitempty"`
	Microscopy *string  `json:"microscopy,omitempty"`
}

type STTG struct {
	Value *string `json:"value,omitempty"`
	Place *string `json:"place,omitempty"` // AIIMS, LPL, Outside
}

type BoneAge struct {
	Date      *time.Time `json:"date,omitempty"`
	Value     *string    `json:"value,omitempty"`
	GPScoring *bool      `json:"gp_scoring,omitempty"`
}

type EndocrineWorkup struct {
	Present       bool          `json:"present"`
	Date          *time.Time    `json:"date,omitempty"`
	Tests         HormonePanel  `json:"tests"`
	GHStimulation GHStimulation `json:"gh_stimulation"`
}

type HormonePanel struct {
	T4           *float64 `json:"t4,omitempty"`
	FreeT4       *float64 `json:"free_t4,omitempty"`
	TSH          *float64 `json:"tsh,omitempty"`
	LH           *float64 `json:"lh,omitempty"`
	FSH          *float64 `json:"fsh,omitempty"`
	PRL          *float64 `json:"prl,omitempty"`
	ACTH         *float64 `json:"acth,omitempty"`
	Cortisol8AM  *float64 `json:"cortisol_8am,omitempty"`
	IGF1         *float64 `json:"igf1,omitempty"`
	Estradiol    *float64 `json:"estradiol,omitempty"`
	Testosterone *float64 `json:"testosterone,omitempty"`
}

// GHStimulation holds the growth-hormone stimulation workup. Clonidine and
// Glucagon carry GH levels per protocol timepoint, in protocol order: six
// timepoints for Clonidine (0..150 min), seven for Glucagon (0..180 min).
type GHStimulation struct {
	Type           *string    `json:"type,omitempty"` // Clonidine, Glucagon
	Date           *time.Time `json:"date,omitempty"`
	Place          *string    `json:"place,omitempty"`
	OutsidePlace   *string    `json:"outside_place,omitempty"`
	Clonidine      []*float64 `json:"clonidine,omitempty"`
	Glucagon       []*float64 `json:"glucagon,omitempty"`
	TestsDone      *int       `json:"tests_done,omitempty"`
	SingleTestType *string    `json:"single_test_type,omitempty"`
	PeakGHLevel    *string    `json:"peak_gh_level,omitempty"` // <10, <7, <5
	ExactPeakGH    *float64   `json:"exact_peak_gh,omitempty"`
	PeakGHTime     *string    `json:"peak_gh_time,omitempty"`
}

type MRIStudy struct {
	Present        bool        `json:"present"`
	Performed      *bool       `json:"performed,omitempty"`
	Date           *time.Time  `json:"date,omitempty"`
	ContrastUsed   *bool       `json:"contrast_used,omitempty"`
	Place          *string     `json:"place,omitempty"`
	FilmsAvailable *bool       `json:"films_available,omitempty"`
	CDAvailable    *bool       `json:"cd_available,omitempty"`
	Scanned        *bool       `json:"scanned,omitempty"`
	Findings       MRIFindings `json:"findings"`
}

type MRIFindings struct {
	AnteriorPituitaryHypoplasia *bool    `json:"anterior_pituitary_hypoplasia,omitempty"`
	StalkInterruption           *bool    `json:"stalk_interruption,omitempty"`
	EctopicPosteriorPituitary   *bool    `json:"ectopic_posterior_pituitary,omitempty"`
	PituitarySizeMM             *float64 `json:"pituitary_size_mm,omitempty"`
	Other                       *string  `json:"other,omitempty"`
}

type Treatment struct {
	Present           bool              `json:"present"`
	Hypothyroidism    Hypothyroidism    `json:"hypothyroidism"`
	Hypocortisolism   Hypocortisolism   `json:"hypocortisolism"`
	DiabetesInsipidus DiabetesInsipidus `json:"diabetes_insipidus"`
	Hypogonadism      Hypogonadism      `json:"hypogonadism"`
	Supplements       Supplements       `json:"supplements"`
	Other             OtherTreatments   `json:"other"`
}

type Hypothyroidism struct {
	Present       *bool      `json:"present,omitempty"`
	DiagnosisDate *time.Time `json:"diagnosis_date,omitempty"`
	StartDate     *time.Time `json:"start_date,omitempty"`
	CurrentDose   *string    `json:"current_dose,omitempty"`
	DoseChanged   *bool      `json:"dose_changed,omitempty"`
	LastT4        *float64   `json:"last_t4,omitempty"`
	Source        *string    `json:"source,omitempty"` // purchased, hospital supply
}

type Hypocortisolism struct {
	Present       *bool      `json:"present,omitempty"`
	DiagnosisDate *time.Time `json:"diagnosis_date,omitempty"`
	ACTHStimTest  *bool      `json:"acth_stim_test,omitempty"`
	TestDate      *time.Time `json:"test_date,omitempty"`
	PeakCortisol  *float64   `json:"peak_cortisol,omitempty"`
	StartDate     *time.Time `json:"start_date,omitempty"`
	SteroidType   *string    `json:"steroid_type,omitempty"` // Prednisolone, hydrocortisone
	CurrentDose   *string    `json:"current_dose,omitempty"`
	Frequency     *string    `json:"frequency,omitempty"` // OD, BD, TDS
	DailyDoseMG   *float64   `json:"daily_dose_mg,omitempty"`
	DoseChanged   *bool      `json:"dose_changed,omitempty"`
	Source        *string    `json:"source,omitempty"`
}

type DiabetesInsipidus struct {
	Present       *bool      `json:"present,omitempty"`
	DiagnosisDate *time.Time `json:"diagnosis_date,omitempty"`
	Minirin       *bool      `json:"minirin,omitempty"`
	Dose          *string    `json:"dose,omitempty"` // half, full, double
	Frequency     *int       `json:"frequency,omitempty"`
}

type Hypogonadism struct {
	Present           *bool      `json:"present,omitempty"`
	DiagnosisDate     *time.Time `json:"diagnosis_date,omitempty"`
	StartDate         *time.Time `json:"start_date,omitempty"`
	FullAdultDoseDate *time.Time `json:"full_adult_dose_date,omitempty"`
	HormoneType       *string    `json:"hormone_type,omitempty"` // Testosterone, estradiol
	MPAStartDate      *time.Time `json:"mpa_start_date,omitempty"`
	CurrentDose       *string    `json:"current_dose,omitempty"`
	DoseChanged       *bool      `json:"dose_changed,omitempty"`
}

type Supplements struct {
	Calcium  *bool `json:"calcium,omitempty"`
	VitaminD *bool `json:"vitamin_d,omitempty"`
	Iron     *bool `json:"iron,omitempty"`
}

type OtherTreatments struct {
	Antiepileptics *bool   `json:"antiepileptics,omitempty"`
	OtherDrugs     *string `json:"other_drugs,omitempty"`
}

type Diagnosis struct {
	Present         bool         `json:"present"`
	Type            *string      `json:"type,omitempty"` // Congenital, Acquired
	IsolatedGHD     *bool        `json:"isolated_ghd,omitempty"`
	Hypopituitarism *bool        `json:"hypopituitarism,omitempty"`
	Axes            AffectedAxes `json:"axes"`
	MRIAbnormality  *bool        `json:"mri_abnormality,omitempty"`
}

type AffectedAxes struct {
	Thyroid  *bool `json:"thyroid,omitempty"`
	Cortisol *bool `json:"cortisol,omitempty"`
	Gonadal  *bool `json:"gonadal,omitempty"`
	DI       *bool `json:"di,omitempty"`
}

type Remarks struct {
	Present bool    `json:"present"`
	Text    *string `json:"text,omitempty"`
}
