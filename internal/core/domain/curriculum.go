package domain

// ProgramTitle is the heading shown above the subject list.
const ProgramTitle = "Bioinformatics"

// ProgramName is the full programme name shown next to the title.
const ProgramName = "M.Sc. Bioinformatics Program"

// DefaultCurriculum returns the bundled curriculum used to seed empty storage.
// Each call returns a fresh copy.
func DefaultCurriculum() []Semester {
	return []Semester{
		{
			ID:           1,
			Name:         "Semester I",
			TotalCredits: "20 Credits",
			Subjects: []Subject{
				{
					Code:    "BIO501",
					Name:    "Bioinformatics I",
					Credits: 4,
					Units: []Unit{
						{Title: "Introduction to Bioinformatics", Content: "Scope, history and applications; biological databases overview."},
						{Title: "Sequence Databases", Content: "GenBank, EMBL, DDBJ, UniProt; file formats FASTA and GenBank."},
						{Title: "Pairwise Alignment", Content: "Dot plots, Needleman-Wunsch, Smith-Waterman, scoring matrices."},
					},
				},
				{
					Code:    "BIO502",
					Name:    "Molecular Biology",
					Credits: 4,
					Units: []Unit{
						{Title: "Nucleic Acids", Content: "DNA and RNA structure, replication, repair."},
						{Title: "Gene Expression", Content: "Transcription, translation, regulation in prokaryotes and eukaryotes."},
					},
				},
				{
					Code:    "BIO503",
					Name:    "Biostatistics",
					Credits: 4,
					Units: []Unit{
						{Title: "Descriptive Statistics", Content: "Measures of central tendency and dispersion."},
						{Title: "Probability Distributions", Content: "Binomial, Poisson, normal distributions."},
						{Title: "Hypothesis Testing", Content: "t-test, chi-square, ANOVA."},
					},
				},
				{
					Code:    "BIO504",
					Name:    "Programming for Biologists",
					Credits: 4,
					Units: []Unit{
						{Title: "Python Basics", Content: "Data types, control flow, functions."},
						{Title: "Biopython", Content: "Parsing sequence files, querying NCBI."},
					},
				},
				{
					Code:    "BIO505",
					Name:    "Laboratory Practical I",
					Credits: 4,
				},
			},
		},
		{
			ID:           2,
			Name:         "Semester II",
			TotalCredits: "20 Credits",
			Subjects: []Subject{
				{
					Code:    "BIO551",
					Name:    "Bioinformatics II",
					Credits: 4,
					Units: []Unit{
						{Title: "Multiple Sequence Alignment", Content: "Progressive alignment, ClustalW, MUSCLE."},
						{Title: "Phylogenetics", Content: "Distance and character based methods, bootstrapping."},
					},
				},
				{
					Code:    "BIO552",
					Name:    "Structural Biology",
					Credits: 4,
					Units: []Unit{
						{Title: "Protein Structure", Content: "Primary to quaternary structure, PDB."},
						{Title: "Structure Prediction", Content: "Homology modelling, threading, ab initio."},
					},
				},
				{
					Code:    "BIO553",
					Name:    "Genomics and Proteomics",
					Credits: 4,
				},
				{
					Code:    "BIO554",
					Name:    "Database Management Systems",
					Credits: 4,
				},
				{
					Code:    "BIO555",
					Name:    "Laboratory Practical II",
					Credits: 4,
				},
			},
		},
		{
			ID:           3,
			Name:         "Semester III",
			TotalCredits: "16 Credits",
			Subjects: []Subject{
				{
					Code:    "BIO601",
					Name:    "Computational Drug Design",
					Credits: 4,
				},
				{
					Code:    "BIO602",
					Name:    "Systems Biology",
					Credits: 4,
				},
				{
					Code:    "BIO603",
					Name:    "Machine Learning in Biology",
					Credits: 4,
				},
				{
					Code:    "BIO604",
					Name:    "Next Generation Sequencing Analysis",
					Credits: 4,
				},
			},
		},
		{
			ID:           4,
			Name:         "Semester IV",
			TotalCredits: "16 Credits",
		},
	}
}
