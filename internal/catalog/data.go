package catalog

import "github.com/lr-explorer-server/internal/domain"

// Sensitivity, specificity, and likelihood ratios are taken from the cited
// primary studies and meta-analyses. LR values are the published figures, not
// re-derived from the rounded sensitivity/specificity columns.
var testRecords = []domain.TestRecord{
	{
		Test: "FIT", Condition: "Colorectal Cancer",
		Sensitivity: 0.79, Specificity: 0.94, LRPlus: 13.20, LRMinus: 0.22,
		Reference:    "Lee JK et al. Accuracy of fecal immunochemical tests for colorectal cancer. Ann Intern Med. 2014;160(3):171.",
		ReferenceURL: "https://pubmed.ncbi.nlm.nih.gov/24658694/",
	},
	{
		Test: "gFOBT", Condition: "Colorectal Cancer",
		Sensitivity: 0.50, Specificity: 0.96, LRPlus: 12.50, LRMinus: 0.52,
		Reference:    "Allison JE et al. A comparison of fecal occult-blood tests for colorectal-cancer screening. N Engl J Med. 1996;334(3):155-9.",
		ReferenceURL: "https://pubmed.ncbi.nlm.nih.gov/8531970/",
	},
	{
		Test: "PSA", Condition: "Prostate Cancer",
		Sensitivity: 0.92, Specificity: 0.16, LRPlus: 1.10, LRMinus: 0.50,
		Reference:    "Thompson IM et al. Operating characteristics of prostate-specific antigen in men with an initial PSA level of 3.0 ng/mL or lower. JAMA. 2005;294(1):66-70.",
		ReferenceURL: "https://pubmed.ncbi.nlm.nih.gov/15998892/",
	},
	{
		Test: "D-dimer (high sensitivity)", Condition: "Pulmonary Embolism",
		Sensitivity: 1.00, Specificity: 0.40, LRPlus: 1.67, LRMinus: 0.00,
		Reference:    "Stein PD et al. D-dimer for the exclusion of acute venous thrombosis and pulmonary embolism. Ann Intern Med. 2004;140(8):589-602.",
		ReferenceURL: "https://pubmed.ncbi.nlm.nih.gov/15096330/",
	},
	{
		Test: "CT pulmonary angiography", Condition: "Pulmonary Embolism",
		Sensitivity: 0.83, Specificity: 0.96, LRPlus: 20.80, LRMinus: 0.18,
		Reference:    "Stein PD et al. Multidetector computed tomography for acute pulmonary embolism (PIOPED II). N Engl J Med. 2006;354(22):2317-27.",
		ReferenceURL: "https://pubmed.ncbi.nlm.nih.gov/16738268/",
	},
	{
		Test: "Rapid strep antigen", Condition: "Strep Pharyngitis",
		Sensitivity: 0.86, Specificity: 0.95, LRPlus: 17.20, LRMinus: 0.15,
		Reference:    "Cohen JF et al. Rapid antigen detection test for group A streptococcus in children with pharyngitis. Cochrane Database Syst Rev. 2016;(7):CD010502.",
		ReferenceURL: "https://pubmed.ncbi.nlm.nih.gov/27374000/",
	},
	{
		Test: "Mammography", Condition: "Breast Cancer",
		Sensitivity: 0.85, Specificity: 0.90, LRPlus: 8.50, LRMinus: 0.17,
		Reference:    "Lehman CD et al. National performance benchmarks for modern screening digital mammography. Radiology. 2017;283(1):49-58.",
		ReferenceURL: "https://pubmed.ncbi.nlm.nih.gov/27918707/",
	},
	{
		Test: "Urine nitrite dipstick", Condition: "Urinary Tract Infection",
		Sensitivity: 0.49, Specificity: 0.98, LRPlus: 24.50, LRMinus: 0.52,
		Reference:    "Devillé WL et al. The urine dipstick test useful to rule out infections. BMC Urol. 2004;4:4.",
		ReferenceURL: "https://pubmed.ncbi.nlm.nih.gov/15175113/",
	},
	{
		Test: "Monospot", Condition: "Infectious Mononucleosis",
		Sensitivity: 0.85, Specificity: 0.94, LRPlus: 14.20, LRMinus: 0.16,
		Reference:    "Linderholm M et al. Comparative evaluation of nine kits for rapid diagnosis of infectious mononucleosis. J Clin Microbiol. 1994;32(1):259-61.",
		ReferenceURL: "https://pubmed.ncbi.nlm.nih.gov/8126196/",
	},
	{
		Test: "High-sensitivity troponin", Condition: "Myocardial Infarction",
		Sensitivity: 0.90, Specificity: 0.92, LRPlus: 11.20, LRMinus: 0.11,
		Reference:    "Reichlin T et al. Early diagnosis of myocardial infarction with sensitive cardiac troponin assays. N Engl J Med. 2009;361(9):858-67.",
		ReferenceURL: "https://pubmed.ncbi.nlm.nih.gov/19710484/",
	},
	{
		Test: "Rapid antigen test", Condition: "COVID-19",
		Sensitivity: 0.72, Specificity: 0.99, LRPlus: 144.00, LRMinus: 0.28,
		Reference:    "Dinnes J et al. Rapid, point-of-care antigen tests for diagnosis of SARS-CoV-2 infection. Cochrane Database Syst Rev. 2021;(3):CD013705.",
		ReferenceURL: "https://pubmed.ncbi.nlm.nih.gov/33760236/",
	},
	{
		Test: "Ferritin", Condition: "Iron Deficiency Anemia",
		Sensitivity: 0.59, Specificity: 0.99, LRPlus: 59.00, LRMinus: 0.41,
		Reference:    "Guyatt GH et al. Laboratory diagnosis of iron-deficiency anemia: an overview. J Gen Intern Med. 1992;7(2):145-53.",
		ReferenceURL: "https://pubmed.ncbi.nlm.nih.gov/1487761/",
	},
	{
		Test: "Anti-CCP antibody", Condition: "Rheumatoid Arthritis",
		Sensitivity: 0.67, Specificity: 0.95, LRPlus: 13.40, LRMinus: 0.35,
		Reference:    "Nishimura K et al. Meta-analysis: diagnostic accuracy of anti-cyclic citrullinated peptide antibody and rheumatoid factor for rheumatoid arthritis. Ann Intern Med. 2007;146(11):797-808.",
		ReferenceURL: "https://pubmed.ncbi.nlm.nih.gov/17548411/",
	},
}

var studyNotes = []domain.StudyNote{
	{
		Test: "FIT", Condition: "Colorectal Cancer",
		Overview:   "Systematic review of fecal immunochemical test accuracy for colorectal cancer in average-risk, asymptomatic adults.",
		SampleSize: "19 studies, over 115,000 participants",
		Population: "Average-risk screening populations, 40-80 years",
		Setting:    "Population screening programs",
		Design:     "Systematic review and meta-analysis",
		Year:       2014,
		Caveats: []string{
			"Accuracy varies with the positivity threshold chosen by each program",
			"Single-application accuracy; programmatic sensitivity over repeated rounds is higher",
		},
	},
	{
		Test: "PSA", Condition: "Prostate Cancer",
		Overview:   "Operating characteristics of PSA in men from the placebo arm of the Prostate Cancer Prevention Trial, all of whom underwent biopsy.",
		SampleSize: "5,587 men",
		Population: "Men aged 62-91 with PSA <= 4.0 ng/mL and normal digital rectal examination",
		Setting:    "Randomized trial placebo arm with end-of-study biopsy",
		Design:     "Prospective cohort within a randomized trial",
		Year:       2005,
		Caveats: []string{
			"At conventional cutoffs PSA trades very low specificity for high sensitivity",
			"Verification by biopsy of all participants avoids work-up bias present in most PSA studies",
		},
		Extra: "Figures shown use the 1.1 ng/mL cutoff row of the published receiver-operating table.",
	},
	{
		Test: "D-dimer (high sensitivity)", Condition: "Pulmonary Embolism",
		Overview:   "Systematic review of D-dimer assays for excluding venous thromboembolism.",
		SampleSize: "78 studies",
		Population: "Adults with clinically suspected pulmonary embolism or deep venous thrombosis",
		Setting:    "Emergency departments and inpatient services",
		Design:     "Systematic review",
		Year:       2004,
		Caveats: []string{
			"A negative high-sensitivity assay reliably excludes disease only in low pre-test probability patients",
			"Specificity falls markedly with age, hospitalization, and comorbidity",
		},
	},
	{
		Test: "High-sensitivity troponin", Condition: "Myocardial Infarction",
		Overview:   "Multicenter evaluation of sensitive troponin assays at presentation in patients with suspected acute myocardial infarction.",
		SampleSize: "718 consecutive patients",
		Population: "Adults presenting with symptoms suggestive of acute myocardial infarction",
		Setting:    "Emergency departments, three countries",
		Design:     "Prospective multicenter cohort",
		Year:       2009,
		Caveats: []string{
			"Single-draw accuracy at presentation; serial sampling improves both sensitivity and specificity",
		},
	},
	{
		Test: "Rapid antigen test", Condition: "COVID-19",
		Overview:   "Cochrane review of point-of-care antigen tests for current SARS-CoV-2 infection.",
		SampleSize: "64 studies, 24,087 samples",
		Population: "Symptomatic and asymptomatic adults and children",
		Setting:    "Community and hospital testing sites",
		Design:     "Systematic review and meta-analysis",
		Year:       2021,
		Caveats: []string{
			"Sensitivity is substantially higher in symptomatic cases during the first week of symptoms",
			"Pooled figures average over brands with widely differing performance",
		},
	},
}
