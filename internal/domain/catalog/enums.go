package catalog

type ArtworkCategory string

const (
	CategoryPainting    ArtworkCategory = "PAINTING"
	CategorySculpture   ArtworkCategory = "SCULPTURE"
	CategoryPhotography ArtworkCategory = "PHOTOGRAPHY"
	CategoryDigitalArt  ArtworkCategory = "DIGITAL_ART"
	CategoryOther       ArtworkCategory = "OTHER"
)

type ArtworkTechnique string

const (
	TechniqueOil             ArtworkTechnique = "OIL"
	TechniqueAcrylic         ArtworkTechnique = "ACRYLIC"
	TechniqueWatercolor      ArtworkTechnique = "WATERCOLOR"
	TechniqueInk             ArtworkTechnique = "INK"
	TechniqueDigitalPainting ArtworkTechnique = "DIGITAL_PAINTING"
)

type ArtworkStyle string

const (
	StyleAbstract      ArtworkStyle = "ABSTRACT"
	StyleContemporary  ArtworkStyle = "CONTEMPORARY"
	StyleMinimalism    ArtworkStyle = "MINIMALISM"
	StyleRealism       ArtworkStyle = "REALISM"
	StyleImpressionism ArtworkStyle = "IMPRESSIONISM"
)

type ArtworkMotive string

const (
	MotiveLandscape ArtworkMotive = "LANDSCAPE"
	MotiveCityscape ArtworkMotive = "CITYSCAPE"
	MotivePortrait  ArtworkMotive = "PORTRAIT"
	MotiveGeometric ArtworkMotive = "GEOMETRIC"
	MotiveNature    ArtworkMotive = "NATURE"
)

type ArtworkOrientation string

const (
	OrientationPortrait  ArtworkOrientation = "PORTRAIT"
	OrientationLandscape ArtworkOrientation = "LANDSCAPE"
	OrientationSquare    ArtworkOrientation = "SQUARE"
)

// ArtworkStandardSize follows the print sizes the gallery actually stocks.
type ArtworkStandardSize string

const (
	SizeA3     ArtworkStandardSize = "A3_29_7x42"
	SizeA2     ArtworkStandardSize = "A2_42x59_4"
	Size50x70  ArtworkStandardSize = "SIZE_50x70"
	Size70x100 ArtworkStandardSize = "SIZE_70x100"
)
