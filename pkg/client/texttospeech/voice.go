package texttospeech

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Voice is a voice identifier. The service matches identifiers literally,
// so the constants below must be exact.
type Voice string

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	VoiceArMsOmar        Voice = "ar-MS_OmarVoice"
	VoiceCsCzAlena       Voice = "cs-CZ_AlenaVoice"
	VoiceDeDeBirgitV3    Voice = "de-DE_BirgitV3Voice"
	VoiceDeDeDieterV3    Voice = "de-DE_DieterV3Voice"
	VoiceDeDeErikaV3     Voice = "de-DE_ErikaV3Voice"
	VoiceEnAuCraig       Voice = "en-AU_CraigVoice"
	VoiceEnAuMadison     Voice = "en-AU_MadisonVoice"
	VoiceEnAuSteve       Voice = "en-AU_SteveVoice"
	VoiceEnGbCharlotteV3 Voice = "en-GB_CharlotteV3Voice"
	VoiceEnGbJamesV3     Voice = "en-GB_JamesV3Voice"
	VoiceEnGbKateV3      Voice = "en-GB_KateV3Voice"
	VoiceEnUsAllisonV3   Voice = "en-US_AllisonV3Voice"
	VoiceEnUsEmilyV3     Voice = "en-US_EmilyV3Voice"
	VoiceEnUsHenryV3     Voice = "en-US_HenryV3Voice"
	VoiceEnUsKevinV3     Voice = "en-US_KevinV3Voice"
	VoiceEnUsLisaV3      Voice = "en-US_LisaV3Voice"
	VoiceEnUsMichaelV3   Voice = "en-US_MichaelV3Voice"
	VoiceEnUsOliviaV3    Voice = "en-US_OliviaV3Voice"
	VoiceEsEsEnriqueV3   Voice = "es-ES_EnriqueV3Voice"
	VoiceEsEsLauraV3     Voice = "es-ES_LauraV3Voice"
	VoiceEsLaSofiaV3     Voice = "es-LA_SofiaV3Voice"
	VoiceEsUsSofiaV3     Voice = "es-US_SofiaV3Voice"
	VoiceFrCaLouiseV3    Voice = "fr-CA_LouiseV3Voice"
	VoiceFrFrNicolasV3   Voice = "fr-FR_NicolasV3Voice"
	VoiceFrFrReneeV3     Voice = "fr-FR_ReneeV3Voice"
	VoiceItItFrancescaV3 Voice = "it-IT_FrancescaV3Voice"
	VoiceJaJpEmiV3       Voice = "ja-JP_EmiV3Voice"
	VoiceKoKrHyunjun     Voice = "ko-KR_HyunjunVoice"
	VoiceKoKrSiWoo       Voice = "ko-KR_SiWooVoice"
	VoiceKoKrYoungmi     Voice = "ko-KR_YoungmiVoice"
	VoiceKoKrYuna        Voice = "ko-KR_YunaVoice"
	VoiceNlBeAdele       Voice = "nl-BE_AdeleVoice"
	VoiceNlBeBram        Voice = "nl-BE_BramVoice"
	VoiceNlNlEmma        Voice = "nl-NL_EmmaVoice"
	VoiceNlNlLiam        Voice = "nl-NL_LiamVoice"
	VoicePtBrIsabelaV3   Voice = "pt-BR_IsabelaV3Voice"
	VoiceSvSeIngrid      Voice = "sv-SE_IngridVoice"
	VoiceZhCnLiNa        Voice = "zh-CN_LiNaVoice"
	VoiceZhCnWangWei     Voice = "zh-CN_WangWeiVoice"
	VoiceZhCnZhangJing   Voice = "zh-CN_ZhangJingVoice"

	// DefaultVoice is used when a client is created without a voice.
	DefaultVoice = VoiceEnUsMichaelV3
)

var (
	// Voices lists every voice identifier understood by the service.
	Voices = []Voice{
		VoiceArMsOmar, VoiceCsCzAlena,
		VoiceDeDeBirgitV3, VoiceDeDeDieterV3, VoiceDeDeErikaV3,
		VoiceEnAuCraig, VoiceEnAuMadison, VoiceEnAuSteve,
		VoiceEnGbCharlotteV3, VoiceEnGbJamesV3, VoiceEnGbKateV3,
		VoiceEnUsAllisonV3, VoiceEnUsEmilyV3, VoiceEnUsHenryV3,
		VoiceEnUsKevinV3, VoiceEnUsLisaV3, VoiceEnUsMichaelV3,
		VoiceEnUsOliviaV3,
		VoiceEsEsEnriqueV3, VoiceEsEsLauraV3, VoiceEsLaSofiaV3,
		VoiceEsUsSofiaV3,
		VoiceFrCaLouiseV3, VoiceFrFrNicolasV3, VoiceFrFrReneeV3,
		VoiceItItFrancescaV3, VoiceJaJpEmiV3,
		VoiceKoKrHyunjun, VoiceKoKrSiWoo, VoiceKoKrYoungmi, VoiceKoKrYuna,
		VoiceNlBeAdele, VoiceNlBeBram, VoiceNlNlEmma, VoiceNlNlLiam,
		VoicePtBrIsabelaV3, VoiceSvSeIngrid,
		VoiceZhCnLiNa, VoiceZhCnWangWei, VoiceZhCnZhangJing,
	}
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Id returns the literal identifier the service expects.
func (v Voice) Id() string {
	return string(v)
}
