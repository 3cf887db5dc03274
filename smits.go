package spectral

import (
	"sync"
)

// Smits' basis reflectances (Smits 1999, as tabulated by pbrt-v3). They are
// sampled on their own grid of 28 wavelengths which is unrelated to the
// Spectrum grid.
var (
	smits_lambdas = []float64{
		401.935486, 412.903229, 423.870972, 434.838715, 445.806458, 456.7742, 467.741943,
		478.709686, 489.677429, 500.645172, 511.612915, 522.580627, 533.54834, 544.516052,
		555.483765, 566.451477, 577.419189, 588.386902, 599.354614, 610.322327, 621.290039,
		632.257751, 643.225464, 654.193176, 665.160889, 676.128601, 687.096313, 698.064026,
	}
	smits_white = []float64{
		1.0614335379927147, 1.0622711654692485, 1.0622036218416742,
		1.0625059965187085, 1.0623938486985884, 1.0624706448043137,
		1.0625048144827762, 1.0624366131308856, 1.0620694238892607,
		1.0613167586932164, 1.061033402937702, 1.0613868564828413,
		1.0614215366116762, 1.0620336151299086, 1.062549745480505,
		1.0624317487992085, 1.062524914055448, 1.0624277664486914,
		1.062474985409077, 1.0625538581025402, 1.0625326910104864,
		1.0623922312225325, 1.062365098035413, 1.0625256476715284,
		1.0612277619533155, 1.0594262608698046, 1.0599810758292072,
		1.0602547314449409,
	}
	smits_cyan = []float64{
		1.0126146228964314, 1.035046052483621, 1.0078661447098567,
		1.042228038508128, 1.0442596738499825, 1.0535238290294409,
		1.018077622693812, 1.0442729908727713, 1.052936254192075,
		1.0537034271160244, 1.053390186921597, 1.0537782700979574,
		1.0527093770467102, 1.0530449040446797, 1.0550554640191208,
		1.055367361072482, 1.0454306634683976, 0.623489506392308,
		0.18038071613188977, -0.007630375920198454, -0.00015217847035781367,
		-0.007510225734725831, -0.002170863932849147, 0.0006591946660236964,
		0.01227881531853978, -0.004466977563720803, 0.017119799082865147,
		0.00492110897597598,
	}
	smits_magenta = []float64{
		0.9829365828611696, 0.9962786839985931, 1.0198955019000133,
		1.016639550121036, 1.0220913178757398, 0.9965166604068244,
		1.0097766178917882, 1.0215422470827016, 0.6403195338779096,
		0.0025012379477078184, 0.006533993955576994, 0.0028334080462675826,
		-5.1209675389074505e-11, -0.009059229164664638, 0.00339367183233312,
		-0.0030638741121828406, 0.22203936168286292, 0.6314114002481197,
		0.9748098557650096, 0.9720956233359057, 1.017377030286815,
		0.9987519432273413, 0.9470172573960224, 0.852586231543548,
		0.9489779858166084, 0.9475187609652149, 0.9959894419105979,
		0.8630135150380908,
	}
	smits_yellow = []float64{
		-0.00525365642986138, -0.006457148004449971, -0.005969351465800701,
		-0.002183671603768672, 0.016781120601055327, 0.09609635542906264,
		0.21217357081986446, 0.3616913329068507, 0.5396101154323253,
		0.7440881049217151, 0.9220957114839405, 1.0460304298411225,
		1.0513824989063714, 1.0511991822135085, 1.0510530911991052,
		1.051739723036051, 1.0516043086790485, 1.051194403206146,
		1.0511590325868068, 1.051661246548303, 1.0514038526836869,
		1.0515941029228475, 1.051146043696084, 1.0515123758830476,
		1.0508871369510702, 1.050892370810238, 1.0477492815668303,
		1.0493272144017338,
	}
	smits_red = []float64{
		0.12408293329637447, 0.11371272058349924, 0.07899243451889913,
		0.03220560359310655, -0.010798365407877875, 0.018051975516730392,
		0.005340719659873053, 0.013654918729501336, -0.005956421354564284,
		-0.0018444365067353252, -0.010571884361529504, -0.002937552107800001,
		-0.010790476271835936, -0.008022430669750363, -0.002266916770249594,
		0.007020024049470663, -0.00815284690002993, 0.6077286696925279,
		0.988315608654324, 0.9939169104407882, 1.0039338994753197,
		0.9923449986116712, 0.9992653085885552, 1.008462155761727,
		0.9835829682744122, 1.0085023660099048, 0.974511383265687,
		0.9854326957005994,
	}
	smits_green = []float64{
		-0.012547236272489583, -0.009455496430838867, -0.012526086181600525,
		-0.007917069776043777, -0.007995573520417569, -0.009355943344446907,
		0.0654686119829993, 0.3957287551763414, 0.7524402229988666,
		0.9637647869021856, 0.9985443385516233, 0.9999297702528792,
		0.9993908675114045, 0.999943722670714, 0.9993912181341867,
		0.9991123731042448, 0.9601958487827158, 0.6318627933843244,
		0.2579740102876347, 0.009401488852733564, -0.0030798345608649747,
		-0.0045230367033685034, -0.006893341038827404, -0.00903521955390154,
		-0.008591366716534021, -0.00836908691202894, -0.007868583233875431,
		-8.365757871108513e-06,
	}
	smits_blue = []float64{
		0.9953904074450564, 0.9952931735300822, 0.9918144741163395,
		1.0002584039673432, 0.9996847843734251, 0.9998812076665717,
		0.9850401214637043, 0.7902984905303128, 0.5608219861746397,
		0.3313345851399653, 0.13692410840839175, 0.01891490655966415,
		-5.112977093255089e-06, -0.00042395493167891873, -0.00041934593101534273,
		0.0017473028136486615, 0.0037999160177631316, -0.0005510147490658864,
		-4.3716662898480967e-05, 0.00758745017487328, 0.02579565078055402,
		0.03816837653250055, 0.04948958640803083, 0.049595992290102905,
		0.04981481950581225, 0.03984091106497802, 0.03050102493723387,
		0.02124305476524108,
	}
)

type basis struct {
	white, cyan, magenta, yellow, red, green, blue Spectrum
}

var smits_basis = sync.OnceValue(func() *basis {
	r := func(values []float64) Spectrum { return resample(smits_lambdas, values) }
	return &basis{
		white:   r(smits_white),
		cyan:    r(smits_cyan),
		magenta: r(smits_magenta),
		yellow:  r(smits_yellow),
		red:     r(smits_red),
		green:   r(smits_green),
		blue:    r(smits_blue),
	}
})

// FromRGB converts a linear RGB triple to a reflectance spectrum using
// Smits' method: the smallest channel selects the amount of white, the
// middle one the amount of the secondary (cyan, magenta or yellow) spanned by
// the two larger channels and the remainder goes to the primary of the
// largest channel. Ties are resolved in favour of red being the smallest,
// then green. There is no clamping, the result can have small negative
// samples and any channel range is accepted.
func FromRGB(r, g, b float64) (ans Spectrum) {
	s := smits_basis()
	switch {
	case r <= g && r <= b:
		ans.AddScaled(r, &s.white)
		if g <= b {
			ans.AddScaled(g-r, &s.cyan)
			ans.AddScaled(b-g, &s.blue)
		} else {
			ans.AddScaled(b-r, &s.cyan)
			ans.AddScaled(g-b, &s.green)
		}
	case g <= r && g <= b:
		ans.AddScaled(g, &s.white)
		if r <= b {
			ans.AddScaled(r-g, &s.magenta)
			ans.AddScaled(b-r, &s.blue)
		} else {
			ans.AddScaled(b-g, &s.magenta)
			ans.AddScaled(r-b, &s.red)
		}
	default:
		ans.AddScaled(b, &s.white)
		if r <= g {
			ans.AddScaled(r-b, &s.yellow)
			ans.AddScaled(g-r, &s.green)
		} else {
			ans.AddScaled(g-b, &s.yellow)
			ans.AddScaled(r-g, &s.red)
		}
	}
	return
}
